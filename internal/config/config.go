// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default request limits.
const (
	defaultMaxBodyBytes = 4 << 20 // 4 MiB of raw trace text
	defaultMaxTraceRows = 250_000
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxBodyBytes caps the size of the raw trace payload accepted
	// by POST /analyze.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// MaxTraceRows caps the number of data rows parsed per request.
	MaxTraceRows int `koanf:"max_trace_rows"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":9080",
		MaxBodyBytes: defaultMaxBodyBytes,
		MaxTraceRows: defaultMaxTraceRows,
	}
}
