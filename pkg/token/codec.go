package token

import (
	"crypto/rsa"
	"fmt"
	"strconv"
	"time"

	"auth_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Config - ключи и сроки жизни токенов.
// Передается в NewCodec один раз при старте, дальше не меняется
type Config struct {
	AccessPrivateKey []byte // приватный RSA ключ в PEM (подпись access токенов)
	AccessPublicKey  []byte // публичный RSA ключ в PEM (проверка; выводится из приватного, если не задан)
	RefreshSecret    []byte // общий секрет (подпись и проверка refresh токенов)
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	Issuer           string
}

// Codec - создает и разбирает оба вида токенов.
// Access токен подписывается асимметрично (RS256), чтобы другие сервисы
// могли проверять его по публичному ключу. Refresh токен проверяет только
// этот сервис, поэтому достаточно симметричной подписи (HS256)
type Codec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.RefreshSecret) == 0 {
		return nil, fmt.Errorf("%w: refresh secret is empty", model.ErrSigning)
	}

	c := &Codec{
		secret:     cfg.RefreshSecret,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		issuer:     cfg.Issuer,
	}

	if len(cfg.AccessPrivateKey) > 0 {
		key, err := jwt.ParseRSAPrivateKeyFromPEM(cfg.AccessPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("%w: parse private key: %v", model.ErrSigning, err)
		}
		c.privateKey = key
		c.publicKey = &key.PublicKey
	}

	if len(cfg.AccessPublicKey) > 0 {
		key, err := jwt.ParseRSAPublicKeyFromPEM(cfg.AccessPublicKey)
		if err != nil {
			return nil, fmt.Errorf("%w: parse public key: %v", model.ErrSigning, err)
		}
		c.publicKey = key
	}

	if c.publicKey == nil {
		return nil, fmt.Errorf("%w: no access token key configured", model.ErrSigning)
	}

	return c, nil
}

// newClaims - собирает claims для обоих видов токенов.
// recordID не пустой только для refresh токена (уходит в jti)
func (c *Codec) newClaims(payload model.TokenPayload, recordID string, ttl time.Duration) model.UserClaims {
	now := time.Now()

	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        recordID,
			Subject:   strconv.Itoa(payload.UserID),
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: payload.Role,
	}

	if payload.TenantID != nil {
		claims.TenantID = strconv.Itoa(*payload.TenantID)
	}

	return claims
}
