package user

import (
	"auth_backend/internal/model"
	"context"
)

func (s *serv) Update(ctx context.Context, user *model.User) error {
	return s.userRepo.Update(ctx, user)
}
