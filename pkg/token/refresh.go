package token

import (
	"fmt"

	"auth_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateRefreshToken - подписывает refresh токен общим секретом (HS256).
// recordID уходит в jti, чтобы при проверке отзыва запись находилась
// без дополнительного обращения к хранилищу
func (c *Codec) GenerateRefreshToken(payload model.TokenPayload, recordID string) (string, error) {
	claims := c.newClaims(payload, recordID, c.refreshTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrSigning, err)
	}

	return signed, nil
}
