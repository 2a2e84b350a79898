package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults taken from the environment. Flags override them.
type Config struct {
	// Format is the output format: text, json or yaml.
	Format string `env:"SURD_FORMAT" envDefault:"text"`
	// Count is the default number of solutions printed by `roots`.
	Count int `env:"SURD_COUNT" envDefault:"5"`
	// MaxPeriod bounds expansions; 0 disables the bound.
	MaxPeriod int `env:"SURD_MAX_PERIOD" envDefault:"0"`
	// Timeout bounds a whole command; 0 disables it.
	Timeout time.Duration `env:"SURD_TIMEOUT" envDefault:"0s"`
}

// LoadConfig parses Config from environ, or from the process environment
// when environ is nil.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Count < 0 {
		return Config{}, fmt.Errorf("SURD_COUNT must be non-negative, got %d", cfg.Count)
	}
	if cfg.MaxPeriod < 0 {
		return Config{}, fmt.Errorf("SURD_MAX_PERIOD must be non-negative, got %d", cfg.MaxPeriod)
	}

	return cfg, nil
}
