package service

import "errors"

// ErrNotFound is returned when a requested resource does not exist or is not
// visible to the requesting user. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError marks a request that is well-formed but semantically
// invalid. Handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
