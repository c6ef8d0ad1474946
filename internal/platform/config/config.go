// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"github.com/oliviarmunoz/plateful-go/auth"
)

// Config carries everything the CLI needs to construct a client.
type Config struct {
	// APIBase falls back to the relative "/api" path used behind a dev proxy.
	APIBase    string        `env:"PLATEFUL_API_BASE" default:"/api"`
	Timeout    time.Duration `env:"PLATEFUL_TIMEOUT" default:"30s"`
	AuthScheme string        `env:"PLATEFUL_AUTH_SCHEME" default:"bearer"`
	RedisURL   string        `env:"REDIS_URL"`
	LogLevel   string        `env:"LOG_LEVEL" default:"info"`
	LogFormat  string        `env:"LOG_FORMAT" default:"text"`

	// Scheme is the parsed form of AuthScheme. Untagged, filled by Load.
	Scheme auth.Scheme
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	scheme, err := auth.ParseScheme(cfg.AuthScheme)
	if err != nil {
		return nil, fmt.Errorf("PLATEFUL_AUTH_SCHEME: %w", err)
	}
	cfg.Scheme = scheme

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("PLATEFUL_TIMEOUT must be positive")
	}

	return &cfg, nil
}
