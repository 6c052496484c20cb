package service

import "errors"

// ErrInvalid marks client-input failures detected before any storage
// interaction. Handlers translate it to HTTP 400.
var ErrInvalid = errors.New("invalid")
