package token

import (
	"fmt"

	"auth_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken - подписывает access токен приватным RSA ключом (RS256)
func (c *Codec) GenerateAccessToken(payload model.TokenPayload) (string, error) {
	if c.privateKey == nil {
		return "", fmt.Errorf("%w: access private key is not configured", model.ErrSigning)
	}

	claims := c.newClaims(payload, "", c.accessTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	signed, err := token.SignedString(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrSigning, err)
	}

	return signed, nil
}
