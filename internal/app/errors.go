package service

import "errors"

// ErrNotReady indicates the service was used before Start or after Stop.
var ErrNotReady = errors.New("service not ready")
