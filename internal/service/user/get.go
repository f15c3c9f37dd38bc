package user

import (
	"auth_backend/internal/model"
	"context"
)

func (s *serv) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *serv) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
