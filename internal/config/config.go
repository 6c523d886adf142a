// Package config reads API server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the HTTP server settings. Values come from QR_*
// environment variables; serve flags override them when set explicitly.
type Server struct {
	Address      string        `env:"QR_ADDRESS" envDefault:":8080"`
	Debug        bool          `env:"QR_DEBUG" envDefault:"false"`
	ReadTimeout  time.Duration `env:"QR_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"QR_WRITE_TIMEOUT" envDefault:"30s"`
}

// FromEnv parses server settings from the environment.
func FromEnv() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
