package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessPrivateKey() []byte
	AccessPublicKey() []byte
	RefreshSecret() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
	Issuer() string
}

type CookieConfig interface {
	Domain() string
	AllowedOrigins() []string
}
