package config

import "github.com/lgbarn/movegen-go/internal/errors"

// ServerConfig holds settings for the HTTP query server.
type ServerConfig struct {
	// Listen is the host:port to serve on. Empty disables the server.
	Listen string

	// Mode is the gin mode: "debug", "release" or "test".
	Mode string

	// CacheSize caps cached move tables (0 = unlimited).
	CacheSize int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Mode:      "release",
		CacheSize: 1024,
	}
}

// Enabled reports whether a listen address is configured.
func (s *ServerConfig) Enabled() bool {
	return s.Listen != ""
}

// Validate checks the listen address when one is set.
func (s *ServerConfig) Validate() error {
	if s.CacheSize < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "cache size must not be negative, got %d", s.CacheSize)
	}
	if s.Listen == "" {
		return nil
	}
	return validateListen(s.Listen)
}
