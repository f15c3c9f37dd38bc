package middleware

import (
	"auth_backend/internal/model"
	"context"
)

type accessClaimsKey struct{}
type refreshClaimsKey struct{}

// AccessClaimsFromContext - claims access токена, положенные Authenticate
func AccessClaimsFromContext(ctx context.Context) (*model.UserClaims, bool) {
	claims, ok := ctx.Value(accessClaimsKey{}).(*model.UserClaims)
	return claims, ok
}

// RefreshClaimsFromContext - claims refresh токена, положенные ValidateRefresh
func RefreshClaimsFromContext(ctx context.Context) (*model.UserClaims, bool) {
	claims, ok := ctx.Value(refreshClaimsKey{}).(*model.UserClaims)
	return claims, ok
}
