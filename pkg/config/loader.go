package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of the formcheck command.
type Config struct {
	Env        string `env:"FORMCHECK_ENV" envDefault:"development"`
	LogLevel   string `env:"FORMCHECK_LOG_LEVEL"`
	LogFormat  string `env:"FORMCHECK_LOG_FORMAT"`
	Lang       string `env:"FORMCHECK_LANG" envDefault:"en"`
	LocalesDir string `env:"FORMCHECK_LOCALES_DIR"`
}

// Validate checks values that env tags cannot express.
func (c Config) Validate() error {
	if c.LogFormat != "" && !slices.Contains([]string{"text", "json"}, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("%w: FORMCHECK_LOG_FORMAT must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if strings.TrimSpace(c.Lang) == "" {
		return fmt.Errorf("%w: FORMCHECK_LANG is empty", ErrInvalidConfig)
	}
	return nil
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. With no arguments it loads ./.env and
// ignores its absence; named files must exist.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v based on its `env` tags.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadConfig loads the given .env files (see LoadEnv), parses Config and
// validates it.
func LoadConfig(files ...string) (Config, error) {
	var cfg Config
	if err := LoadEnv(files...); err != nil {
		return cfg, err
	}
	if err := Load(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
