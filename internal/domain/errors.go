// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrTitleRequired is returned when a task title is missing or only whitespace.
	ErrTitleRequired = fmt.Errorf("%w: title is required", ErrValidation)

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title is too long", ErrValidation)

	// ErrTitleInvalid is returned when a task title holds a NUL byte or invalid UTF-8.
	ErrTitleInvalid = fmt.Errorf("%w: title contains invalid characters", ErrValidation)

	// ErrInvalidPriority is returned when a priority is not one of low, medium or high.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)

	// ErrInvalidDate is returned when a due date cannot be parsed as a calendar date.
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrValidation)
)

// ValidationError describes a single invalid field.
// It wraps one of the sentinel errors above so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
