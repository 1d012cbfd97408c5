// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Directory source kinds.
const (
	DirectoryFile     = "file"
	DirectoryPostgres = "postgres"
	DirectorySeed     = "seed"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WorkerCount bounds the per-employee scoring parallelism.
	WorkerCount int `koanf:"worker_count"`

	// BaselinePolicy selects the categorical baseline policy:
	// lexicographic, mode, or first.
	BaselinePolicy string `koanf:"baseline_policy"`

	// ResultCacheSize bounds the match result cache.
	ResultCacheSize int `koanf:"result_cache_size"`

	// DirectorySource selects the employee directory backend: file,
	// postgres, or seed (synthetic population for demos).
	DirectorySource string `koanf:"directory_source"`

	// DirectoryFile is the JSON employee file read when DirectorySource is
	// "file".
	DirectoryFile string `koanf:"directory_file"`

	// DatabaseURL is the Postgres connection string used by the postgres
	// directory and the audit sink.
	DatabaseURL string `koanf:"database_url"`

	// AuditEnabled turns on vacancy registration and audit trail writes.
	AuditEnabled bool `koanf:"audit_enabled"`

	// SeedSize sets the synthetic population size for the seed directory.
	SeedSize int `koanf:"seed_size"`

	// MaxRowsLimit caps the employee listing endpoint.
	MaxRowsLimit int `koanf:"max_rows_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		WorkerCount:     runtime.NumCPU(),
		BaselinePolicy:  "lexicographic",
		ResultCacheSize: 128,
		DirectorySource: DirectorySeed,
		DirectoryFile:   "employees.json",
		SeedSize:        500,
		MaxRowsLimit:    100_000,
	}
}
