// Package apperr defines the error types surfaced by the Runway API.
// It defines three categories: ValidationError (bad request input),
// NotFoundError (mutation target absent), and StoreError (the key-value
// store failed underneath an otherwise valid request).
package apperr

import (
	"errors"
)

// ValidationError represents a request payload that is missing or has
// invalid required fields. The message names the offending fields and is
// returned to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation creates a new ValidationError.
func Validation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError represents an update whose target record does not exist.
// Deletes never produce it; they are treated as always succeeding.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound creates a new NotFoundError.
func NotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// StoreError represents an unexpected failure in the key-value store.
// Message is the generic text returned to the caller; Cause carries the
// internal detail, which is logged server-side and never exposed.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Store wraps a store failure with a caller-facing message.
func Store(message string, cause error) *StoreError {
	return &StoreError{Message: message, Cause: cause}
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsStore extracts a StoreError from an error chain.
func AsStore(err error) (*StoreError, bool) {
	var se *StoreError
	ok := errors.As(err, &se)
	return se, ok
}
