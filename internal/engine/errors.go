package engine

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidBenchmark is returned when the benchmark set is empty,
	// oversized, or names unknown or duplicate employees.
	ErrInvalidBenchmark = errors.New("invalid benchmark set")
)
