// Package config loads runtime configuration from the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration
type Config struct {
	// SeedToken is a development fallback for the build-time token; empty means a random seed
	SeedToken string `env:"COMPILE_TIME_SEED"`

	Debug     bool   `env:"GAMEKIT_DEBUG" envDefault:"false"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir    string `env:"GAMEKIT_LOG_DIR" envDefault:"logs"`

	Audio bool `env:"GAMEKIT_AUDIO" envDefault:"true"`
}

// Load parses Config from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from .env files without overriding existing ones
// A missing file is not an error; it reports whether anything was loaded
func LoadDotEnv(paths ...string) (bool, error) {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load dotenv: %w", err)
	}
	return true, nil
}
