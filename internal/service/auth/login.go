package auth

import (
	"auth_backend/internal/model"
	"auth_backend/pkg/pass"
	"context"
	"errors"
)

func (s *serv) Login(ctx context.Context, email, password string) (*model.AuthData, error) {
	// Получение пользователя из бд по email
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Наружу не раскрываем, что именно не совпало - email или пароль
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}
