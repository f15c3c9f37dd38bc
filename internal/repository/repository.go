package repository

import (
	"auth_backend/internal/model"
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (id int, err error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int) error
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *model.Tenant) (id int, err error)
	GetByID(ctx context.Context, id int) (*model.Tenant, error)
	List(ctx context.Context) ([]model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) error
	Delete(ctx context.Context, id int) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, userID int, ttl time.Duration) (*model.RefreshTokenRecord, error)
	Exists(ctx context.Context, id string, userID int) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int) error
}
