package env

import (
	"auth_backend/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	accessPrivateKeyPathEnvName = "ACCESS_TOKEN_PRIVATE_KEY_PATH"
	accessPublicKeyPathEnvName  = "ACCESS_TOKEN_PUBLIC_KEY_PATH"
	refreshSecretEnvName        = "REFRESH_TOKEN_SECRET"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
	issuerEnvName               = "JWT_ISSUER"

	defaultIssuer = "auth-service"
)

type jwtConfig struct {
	accessPrivateKey     []byte
	accessPublicKey      []byte
	refreshSecret        string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	issuer               string
}

func NewJWTConfig() (config.JWTConfig, error) {
	privateKeyPath := os.Getenv(accessPrivateKeyPathEnvName)
	if len(privateKeyPath) == 0 {
		return nil, fmt.Errorf("access token private key path not found")
	}

	privateKey, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	// Публичный ключ опционален: если не задан, выводится из приватного
	var publicKey []byte
	if publicKeyPath := os.Getenv(accessPublicKeyPathEnvName); len(publicKeyPath) > 0 {
		publicKey, err = os.ReadFile(publicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read public key: %w", err)
		}
	}

	refreshSecret := os.Getenv(refreshSecretEnvName)
	if len(refreshSecret) == 0 {
		return nil, fmt.Errorf("refresh token secret not found")
	}

	accessTokenDuration := os.Getenv(accessTokenDurationEnvName)
	if len(accessTokenDuration) == 0 {
		return nil, fmt.Errorf("access token duration not found")
	}

	accessTokenDurationParsed, err := time.ParseDuration(accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token duration: %w", err)
	}

	refreshTokenDuration := os.Getenv(refreshTokenDurationEnvName)
	if len(refreshTokenDuration) == 0 {
		return nil, fmt.Errorf("refresh token duration not found")
	}

	refreshTokenDurationParsed, err := time.ParseDuration(refreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token duration: %w", err)
	}

	issuer := os.Getenv(issuerEnvName)
	if len(issuer) == 0 {
		issuer = defaultIssuer
	}

	return &jwtConfig{
		accessPrivateKey:     privateKey,
		accessPublicKey:      publicKey,
		refreshSecret:        refreshSecret,
		accessTokenDuration:  accessTokenDurationParsed,
		refreshTokenDuration: refreshTokenDurationParsed,
		issuer:               issuer,
	}, nil
}

func (j *jwtConfig) AccessPrivateKey() []byte {
	return j.accessPrivateKey
}

func (j *jwtConfig) AccessPublicKey() []byte {
	return j.accessPublicKey
}

func (j *jwtConfig) RefreshSecret() []byte {
	return []byte(j.refreshSecret)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}

func (j *jwtConfig) Issuer() string {
	return j.issuer
}
