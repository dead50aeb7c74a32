// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Storage backends.
const (
	BackendSQLite  = "sqlite"
	BackendArchive = "archive"
	BackendMemory  = "memory"
)

// Config holds the server configuration.
type Config struct {
	Port        int    `env:"MEALTRACKER_PORT"    envDefault:"8080"                 validate:"gt=0,lt=65536"`
	Backend     string `env:"MEALTRACKER_STORAGE" envDefault:"sqlite"               validate:"oneof=sqlite archive memory"`
	DBPath      string `env:"DB_PATH"             envDefault:"./data/meals.db"      validate:"required_if=Backend sqlite"`
	ArchivePath string `env:"ARCHIVE_PATH"        envDefault:"./data/meals.archive" validate:"required_if=Backend archive"`
	SeedSamples bool   `env:"MEALTRACKER_SEED"    envDefault:"true"`
	JWTSecret   string `env:"JWT_SECRET"          validate:"omitempty,min=16"`
	LogLevel    string `env:"LOG_LEVEL"           envDefault:"info"                 validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// AuthEnabled reports whether RPCs require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
