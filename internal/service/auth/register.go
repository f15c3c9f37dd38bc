package auth

import (
	"auth_backend/internal/model"
	"auth_backend/pkg/pass"
	"context"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	// Саморегистрация всегда дает роль customer
	user.Role = model.RoleCustomer

	var data *model.AuthData

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.Create(ctx, user)
		if err != nil {
			return err
		}

		// 2. Выдать пару токенов
		data, err = s.issueTokens(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
