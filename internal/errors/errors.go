// Package errors provides the application-wide error sentinels. Domain packages wrap these
// sentinels so transport layers can map failures to status codes without knowing every
// domain error type.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested item is not known (e.g., an unregistered country).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the caller supplied data that fails a structural or checksum rule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates the operation clashes with data that already exists.
	ErrConflict = errors.New("conflict")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping it matchable with Is and As.
// Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error wrapping all non-nil errs, or nil when there are none.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
