// Package constants provides shared constants used throughout the stepmap
// codebase: timeouts, server defaults, and file permissions.
package constants

import "time"

// Server defaults.
const (
	// DefaultServerPort is the default API server port
	DefaultServerPort = 8080

	// DefaultServerHost is the default bind address
	DefaultServerHost = "localhost"

	// DefaultPathPrefix is the default API path prefix
	DefaultPathPrefix = "/api/v1"

	// DefaultCacheTTL is the default TTL for cached step computations
	DefaultCacheTTL = 5 * time.Minute
)

// Timeout constants define various timeout durations used in the application.
const (
	// DefaultReadTimeout is the HTTP server read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP server idle connection timeout
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout is how long graceful shutdown waits for connections to drain
	ShutdownTimeout = 10 * time.Second
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
