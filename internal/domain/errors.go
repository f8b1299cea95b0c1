package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction signals that the vector index could not be built.
	ErrConstruction = errors.New("index construction failed")
	// ErrQuery signals a failure while encoding or ranking a single query.
	ErrQuery = errors.New("query failed")
	// ErrData signals malformed persisted data (e.g. an unreadable tag encoding).
	ErrData = errors.New("malformed data")
	// ErrInvalidRequest signals a request rejected before reaching the engine.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnavailable signals that a required collaborator is not reachable.
	ErrUnavailable = errors.New("unavailable")
)

// FieldError describes a rejected request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest.Error(), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidRequest }

// NewFieldError creates a request validation error for a single field.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
