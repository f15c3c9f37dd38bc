package auth

import (
	"auth_backend/internal/model"
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Refresh - ротация пары токенов.
// Проверку отзыва уже прошел middleware, здесь старая запись удаляется
// ДО создания новой, обе операции в одной транзакции: при сбое посередине
// не останется двух действующих сессий
func (s *serv) Refresh(ctx context.Context, claims *model.UserClaims) (*model.AuthData, error) {
	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject: %v", model.ErrInvalidToken, err)
	}

	// Получение пользователя: роль и tenant берутся из бд,
	// а не из старых claims - они могли измениться
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidToken
		}
		return nil, err
	}

	var data *model.AuthData

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Удалить старую запись
		if claims.ID != "" {
			if err := s.refreshRepo.Delete(ctx, claims.ID); err != nil {
				return err
			}
		}

		// 2. Выдать новую пару
		var issueErr error
		data, issueErr = s.issueTokens(ctx, user)
		return issueErr
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
