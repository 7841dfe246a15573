// Package config provides configuration for movegen.
package config

import (
	"io"
	"net"
	"os"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// MaxWorkers bounds the worker pool size.
const MaxWorkers = 256

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=errors only, 1=summary, 2=running commentary
	Verbosity int

	// Workers is the number of goroutines used for whole-board move tables.
	Workers int

	// FEN is the piece placement to load. Empty means the initial position.
	FEN string

	Output OutputConfig
	Server ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     *NewOutputConfig(),
		Server:     *NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must be 0, 1 or 2, got %d", c.Verbosity)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// validateListen checks a host:port listen address.
func validateListen(addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "listen address %q: %v", addr, err)
	}
	return nil
}
