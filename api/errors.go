package api

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken      = errors.New("token is required")
	ErrMissingField      = errors.New("value is required")
	ErrZeroAmount        = errors.New("amount must be greater than 0")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ConfigurationError is returned when a Client cannot be constructed
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError reports a rejected argument or a failed pre-check.
// Field names the argument or remote entity that failed.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("missing %s", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

func missing(field string) error {
	return &ValidationError{Field: field, Err: ErrMissingField}
}
