package server

import (
	"time"

	"github.com/stepmap/stepmap/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Performance settings
	CacheTTL time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Features
	MetricsEnabled bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:           constants.DefaultServerHost,
		Port:           constants.DefaultServerPort,
		PathPrefix:     constants.DefaultPathPrefix,
		CORSEnabled:    false,
		CORSOrigins:    []string{},
		CacheTTL:       constants.DefaultCacheTTL,
		ReadTimeout:    constants.DefaultReadTimeout,
		WriteTimeout:   constants.DefaultWriteTimeout,
		IdleTimeout:    constants.DefaultIdleTimeout,
		MetricsEnabled: true,
	}
}
