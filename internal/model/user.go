package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Роли пользователей. Менеджер привязан к конкретному арендатору,
// поэтому только его токены несут tenant_id.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

type User struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	TenantID  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
}
