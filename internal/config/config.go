// Package config loads game settings from the environment and validates
// them after command-line overrides are applied.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	GridSize  int           `env:"GO_PAIRS_GRID_SIZE"  envDefault:"4"  validate:"oneof=4 6"`
	Theme     string        `env:"GO_PAIRS_THEME"                      validate:"omitempty,oneof=dark light"`
	FlipDelay time.Duration `env:"GO_PAIRS_FLIP_DELAY" envDefault:"1s" validate:"min=0s,max=10s"`
	FacesPath string        `env:"GO_PAIRS_FACES"`
	DataDir   string        `env:"GO_PAIRS_DATA_DIR"`
	LogFile   string        `env:"GO_PAIRS_LOG_FILE"`
	LogLevel  string        `env:"GO_PAIRS_LOG_LEVEL"  envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads configuration from environment variables. Call Validate once
// any flag overrides have been applied.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

// DefaultDataDir is ~/.config/go-pairs.
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "go-pairs"), nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg and reports every offending field at once.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
