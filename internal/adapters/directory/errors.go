package directory

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrEmptyDirectory = errors.New("employee directory is empty")
	ErrLoadFailed     = errors.New("employee directory load failed")
)
