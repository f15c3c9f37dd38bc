package service

import (
	"auth_backend/internal/model"
	"context"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, email, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, claims *model.UserClaims) (*model.AuthData, error)
	Logout(ctx context.Context, recordID string) error
	Self(ctx context.Context, userID int) (*model.User, error)
}

type UserService interface {
	Create(ctx context.Context, user *model.User) (id int, err error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int) error
}

type TenantService interface {
	Create(ctx context.Context, tenant *model.Tenant) (id int, err error)
	GetByID(ctx context.Context, id int) (*model.Tenant, error)
	List(ctx context.Context) ([]model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) error
	Delete(ctx context.Context, id int) error
}
