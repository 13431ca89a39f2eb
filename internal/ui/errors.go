package ui

import "errors"

// ValidationMessage is shown when a scale request is rejected locally
const ValidationMessage = "all fields must be filled in correctly"

// ValidationError is returned when a scale request is rejected before any
// network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError checks if the given error is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
