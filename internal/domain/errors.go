package domain

import "errors"

var (
	// ErrInvalidInput marks malformed numeric ranges and mismatched inputs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCandidatePool indicates a category has no eligible ingredients.
	ErrEmptyCandidatePool = errors.New("empty candidate pool")

	// ErrDataConsistency tags references to ingredients missing from the catalog.
	ErrDataConsistency = errors.New("data consistency")
)

// ValidationError describes a single rejected field. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
