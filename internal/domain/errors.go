package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("Unauthorized")
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("resource already exists")
	ErrReferenced    = errors.New("resource is still referenced")
	ErrInternalError = errors.New("internal error")

	ErrUserNotFound         = fmt.Errorf("user: %w", ErrNotFound)
	ErrCategoryNotFound     = fmt.Errorf("category: %w", ErrNotFound)
	ErrTransactionNotFound  = fmt.Errorf("transaction: %w", ErrNotFound)
	ErrIncomeSourceNotFound = fmt.Errorf("income source: %w", ErrNotFound)
	ErrRecurringNotFound    = fmt.Errorf("recurring expense: %w", ErrNotFound)

	ErrCategoryAlreadyExists = fmt.Errorf("category: %w", ErrConflict)
	ErrCategoryInUse         = fmt.Errorf("category: %w", ErrReferenced)
)

// ValidationError reports the first field that failed input validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a field-scoped validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError is a unique-constraint violation with a user-facing message
type ConflictError struct {
	Err     error
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// ReferenceError is a delete blocked by rows that still reference the target
type ReferenceError struct {
	Err     error
	Count   int64
	Message string
}

func (e *ReferenceError) Error() string {
	return e.Message
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// Plural returns word with an "s" appended unless n is exactly one
func Plural(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
