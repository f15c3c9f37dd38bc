package auth

import (
	"auth_backend/internal/config"
	"auth_backend/internal/model"
	"auth_backend/internal/repository"
	"auth_backend/internal/service"
	"auth_backend/pkg/token"
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	refreshRepo repository.RefreshTokenRepository
	codec       *token.Codec
	jwtConfig   config.JWTConfig
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	refreshRepo repository.RefreshTokenRepository,
	codec *token.Codec,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		codec:       codec,
		jwtConfig:   jwtConfig,
	}
}

// issueTokens - выдает пару токенов на одну сессию:
// access токен, запись в хранилище, refresh токен с ID этой записи
func (s *serv) issueTokens(ctx context.Context, user *model.User) (*model.AuthData, error) {
	payload := buildPayload(user)

	// Создать access токен
	accessToken, err := s.codec.GenerateAccessToken(payload)
	if err != nil {
		return nil, err
	}

	// Создать запись о refresh токене
	record, err := s.refreshRepo.Create(ctx, user.ID, s.jwtConfig.RefreshTokenDuration())
	if err != nil {
		return nil, err
	}

	// Создать refresh токен, привязанный к записи
	refreshToken, err := s.codec.GenerateRefreshToken(payload, record.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// buildPayload - tenant_id включается в claims только для роли manager
func buildPayload(user *model.User) model.TokenPayload {
	payload := model.TokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	}

	if user.Role == model.RoleManager {
		payload.TenantID = user.TenantID
	}

	return payload
}
