package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrUnavailable   = errors.New("temporarily unavailable")
)

// Scheduler errors. Input errors are caller contract violations and are not retried.
var (
	ErrInvalidGrade     = &inputError{msg: "invalid grade"}
	ErrEmptyDeck        = &inputError{msg: "empty deck"}
	ErrNoCurrentCard    = &inputError{msg: "no current card"}
	ErrNoCardsDue       = errors.New("no cards due")
	ErrReviewInFlight   = errors.New("review in flight")
	ErrSessionNotActive = errors.New("session not active")
)

// inputError is a sentinel that also matches ErrValidation.
type inputError struct{ msg string }

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return ErrValidation }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// RetryableError marks a transient I/O failure. The session that returned it is
// unchanged, so the same call can be repeated.
type RetryableError struct {
	Op  string
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap lets callers match both ErrUnavailable and the underlying cause.
func (e *RetryableError) Unwrap() []error { return []error{ErrUnavailable, e.Err} }

// Retryable wraps err as a RetryableError unless it is nil. An error that is
// already retryable, or that carries a permanent domain sentinel, only gets op
// added: a missing row or a rejected write does not succeed on retry.
func Retryable(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsRetryable(err) || isPermanent(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &RetryableError{Op: op, Err: err}
}

func isPermanent(err error) bool {
	for _, target := range []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized, ErrConflict} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsRetryable reports whether err is a transient failure the caller may retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
