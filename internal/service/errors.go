package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a point id has no matching row.
	ErrNotFound = errors.New("point not found")

	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrTransaction is returned when the point creation transaction was
	// rolled back. Nothing from the request is persisted.
	ErrTransaction = errors.New("transaction failed")
)

// ValidationError reports one rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
