package user

import (
	"auth_backend/internal/repository"
	"auth_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	refreshRepo repository.RefreshTokenRepository
}

func NewUserService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	refreshRepo repository.RefreshTokenRepository,
) service.UserService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
	}
}
