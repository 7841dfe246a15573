package config

import (
	"io"

	"github.com/kelseyhightower/envconfig"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MOVEGEN"

// environment lists the settings that can come from the environment,
// e.g. MOVEGEN_WORKERS=4.
type environment struct {
	Workers    int    `envconfig:"WORKERS"`
	NoColor    bool   `envconfig:"NO_COLOR"`
	JSON       bool   `envconfig:"JSON"`
	LineLength int    `envconfig:"LINE_LENGTH"`
	Listen     string `envconfig:"LISTEN"`
	GinMode    string `envconfig:"GIN_MODE"`
	CacheSize  int    `envconfig:"CACHE_SIZE"`
	Verbosity  int    `envconfig:"VERBOSITY"`
	FEN        string `envconfig:"FEN"`
}

// LoadEnv overrides cfg with any MOVEGEN_* environment variables that are
// set. Unset variables leave the current value alone.
func LoadEnv(cfg *Config) error {
	env := environment{
		Workers:    cfg.Workers,
		NoColor:    cfg.Output.NoColor,
		JSON:       cfg.Output.JSONFormat,
		LineLength: cfg.Output.MaxLineLength,
		Listen:     cfg.Server.Listen,
		GinMode:    cfg.Server.Mode,
		CacheSize:  cfg.Server.CacheSize,
		Verbosity:  cfg.Verbosity,
		FEN:        cfg.FEN,
	}
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "environment: %v", err)
	}

	cfg.Workers = env.Workers
	cfg.Output.NoColor = env.NoColor
	cfg.Output.JSONFormat = env.JSON
	cfg.Output.MaxLineLength = env.LineLength
	cfg.Server.Listen = env.Listen
	cfg.Server.Mode = env.GinMode
	cfg.Server.CacheSize = env.CacheSize
	cfg.Verbosity = env.Verbosity
	cfg.FEN = env.FEN
	return nil
}

// FromEnv returns the defaults overridden by the environment.
func FromEnv() (*Config, error) {
	cfg := NewConfig()
	if err := LoadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnvUsage writes a table of the recognised environment variables.
func EnvUsage(w io.Writer) error {
	return envconfig.Usagef(EnvPrefix, &environment{}, w, envconfig.DefaultTableFormat)
}
