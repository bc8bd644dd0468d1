package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap exactly one of them so the transport layer
// can map them with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrExternalService = errors.New("external service failure")
)

var (
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	ErrOrderNumberTaken = fmt.Errorf("order number already taken: %w", ErrConflict)
	ErrPaymentIDTaken   = fmt.Errorf("payment id already linked to another order: %w", ErrConflict)

	ErrInsufficientStock = &ValidationError{Field: "items", Reason: "insufficient stock"}

	ErrInvalidSignature = fmt.Errorf("invalid signature: %w", ErrValidation)
	ErrInvalidPayload   = fmt.Errorf("invalid payload: %w", ErrValidation)
)

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ExternalServiceError carries a sanitized Reason that is safe to show to
// API callers; Err keeps the provider error for logs.
type ExternalServiceError struct {
	Service string
	Reason  string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Err == nil {
		return e.Service + ": " + e.Reason
	}
	return e.Service + ": " + e.Reason + ": " + e.Err.Error()
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}
