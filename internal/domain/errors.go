package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrNotFound        = errors.New("not found")
)

// ArgumentError reports a rejected argument. Error() returns the message
// verbatim so callers and tests can compare it directly.
// Use errors.Is(err, ErrInvalidArgument) for simple checks, or
// errors.As(err, &aerr) to read the offending field.
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewArgumentError returns an *ArgumentError for field with the given message.
func NewArgumentError(field, message string) error {
	return &ArgumentError{Field: field, Message: message}
}

// DuplicateKeyError reports a uniqueness violation on persist.
type DuplicateKeyError struct {
	// Entity is the entity type name, e.g. "Person".
	Entity string
	// Key names the colliding key, e.g. "ID", "username", "email".
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return e.Entity + " with this " + e.Key + " already exists."
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// RequireText fails with an *ArgumentError when value is empty after trimming.
// The message follows the "<Label> cannot be null or empty." convention.
func RequireText(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewArgumentError(field, label+" cannot be null or empty.")
	}
	return nil
}

// NullArgument returns the "<Label> cannot be null." error for a missing
// required value.
func NullArgument(field, label string) error {
	return NewArgumentError(field, label+" cannot be null.")
}
