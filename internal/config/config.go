// Package config resolves SDK configuration from the process environment.
// It is read once at client construction; the resulting values are immutable
// for the lifetime of a client.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the credentials and transport settings of the SDK.
type Config struct {
	// APIKey is the Cloudflare API key used as the bearer token on every request.
	APIKey string `env:"CLOUDFLARE_API_KEY"`
	// AccountID is the Cloudflare account whose URL Scanner endpoints are addressed.
	AccountID string `env:"CLOUDFLARE_ACCOUNT_ID"`
	// Timeout is the fixed per-call timeout applied uniformly to all operations.
	Timeout time.Duration `env:"CLOUDFLARE_TIMEOUT" env-default:"60s"`
}

// FromEnv reads the configuration from environment variables and returns a
// filled Config struct. Missing credentials are not an error here; the client
// validates them against its explicit options at construction.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
