package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrSourceUnavailable marks network failures and non-200 responses.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedResponse marks payloads whose shape could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrConfigurationMissing marks a required setting (e.g. an API key) that is absent.
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrValidation           = errors.New("validation error")
	ErrNoSenses             = errors.New("no senses")
)

// TranslationPlaceholder is returned by the terminal translation step when it fails.
const TranslationPlaceholder = "(translation unavailable)"

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
