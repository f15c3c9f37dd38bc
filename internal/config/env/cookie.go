package env

import (
	"auth_backend/internal/config"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type cookieConfig struct {
	domain         string
	allowedOrigins []string
}

type cookieYAML struct {
	Cookie struct {
		Domain string `yaml:"domain"`
	} `yaml:"cookie"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// NewCookieConfigFromYAML - настройки cookie и CORS из config.yaml
func NewCookieConfigFromYAML(path string) (config.CookieConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var parsed cookieYAML
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &cookieConfig{
		domain:         parsed.Cookie.Domain,
		allowedOrigins: parsed.CORS.AllowedOrigins,
	}

	if len(cfg.allowedOrigins) == 0 {
		cfg.allowedOrigins = []string{"*"}
	}

	return cfg, nil
}

func (cfg *cookieConfig) Domain() string {
	return cfg.domain
}

func (cfg *cookieConfig) AllowedOrigins() []string {
	return cfg.allowedOrigins
}
