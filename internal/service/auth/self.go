package auth

import (
	"auth_backend/internal/model"
	"context"
)

func (s *serv) Self(ctx context.Context, userID int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
