package token

import (
	"errors"
	"fmt"

	"auth_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ParseAccessToken - проверяет подпись access токена публичным ключом
func (c *Codec) ParseAccessToken(tokenStr string) (*model.UserClaims, error) {
	return c.parse(tokenStr, jwt.SigningMethodRS256.Alg(), func(t *jwt.Token) (interface{}, error) {
		return c.publicKey, nil
	})
}

// ParseRefreshToken - проверяет подпись refresh токена общим секретом
func (c *Codec) ParseRefreshToken(tokenStr string) (*model.UserClaims, error) {
	return c.parse(tokenStr, jwt.SigningMethodHS256.Alg(), func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
}

// parse - общая проверка и разбор токена.
// Просроченный, подделанный и кривой токены различаются как подвиды
// ErrInvalidToken - наружу все равно уходит один 401
func (c *Codec) parse(tokenStr string, alg string, keyFunc jwt.Keyfunc) (*model.UserClaims, error) {
	claims := &model.UserClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, keyFunc,
		jwt.WithValidMethods([]string{alg}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, model.ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, model.ErrTokenSignature)
		default:
			return nil, fmt.Errorf("%w: %w: %v", model.ErrInvalidToken, model.ErrTokenMalformed, err)
		}
	}

	if !token.Valid {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}
