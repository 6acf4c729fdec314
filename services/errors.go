package services

import "errors"

// Error categories the controllers map to HTTP statuses. Services wrap
// these with fmt.Errorf("...: %w", ...) so callers can use errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPermissionDenied = errors.New("permission denied")
)
