package audit

import "errors"

// Sentinel kinds for audit errors.
var (
	ErrUnknownVacancy = errors.New("unknown vacancy")
	ErrRecordFailed   = errors.New("audit record failed")
)
