package config

import "github.com/lgbarn/movegen-go/internal/errors"

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// NoColor disables ANSI colours in board rendering
	NoColor bool

	// JSONFormat enables JSON output instead of a rendered board
	JSONFormat bool

	// MaxLineLength is the wrap column for move lists
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}

// Validate checks output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 20 {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length must be at least 20, got %d", o.MaxLineLength)
	}
	return nil
}
