package user

import (
	"auth_backend/internal/model"
	"auth_backend/pkg/pass"
	"context"
)

// Create - создание пользователя администратором.
// В отличие от саморегистрации роль и tenant задаются явно
func (s *serv) Create(ctx context.Context, user *model.User) (int, error) {
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return 0, err
	}
	user.Password = passwordHash

	return s.userRepo.Create(ctx, user)
}
