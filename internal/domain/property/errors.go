package property

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrImageNotFound    = errors.New("image not found")
)

// ValidationError carries per-field messages. Nothing is mutated when
// one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}
