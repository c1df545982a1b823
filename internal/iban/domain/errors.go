package domain

import (
	"fmt"

	"github.com/allisson/ibancheck/internal/errors"
)

var (
	// ErrUnknownCountry indicates the country code is not present in the registry.
	ErrUnknownCountry = errors.Wrap(errors.ErrNotFound, "unknown country")

	// ErrIncorrectLength indicates the BBAN length does not match the country spec.
	ErrIncorrectLength = errors.Wrap(errors.ErrInvalidInput, "incorrect length")

	// ErrIncorrectChecksum indicates the mod-97 remainder of the IBAN is not 1.
	ErrIncorrectChecksum = errors.Wrap(errors.ErrInvalidInput, "incorrect checksum")

	// ErrMalformedSpec indicates a registry record violates a spec invariant.
	ErrMalformedSpec = errors.Wrap(errors.ErrInvalidInput, "malformed spec")

	// ErrInvalidCharacter indicates a character outside [0-9A-Z] reached the numeric encoder.
	ErrInvalidCharacter = errors.Wrap(errors.ErrInvalidInput, "invalid character")

	// ErrBatchTooLarge indicates a batch holds more inputs than the configured maximum.
	ErrBatchTooLarge = errors.Wrap(errors.ErrInvalidInput, "batch too large")
)

// Machine readable codes for each error kind.
const (
	CodeUnknownCountry    = "unknown_country"
	CodeIncorrectLength   = "incorrect_length"
	CodeIncorrectChecksum = "incorrect_checksum"
	CodeMalformedSpec     = "malformed_spec"
	CodeInvalidCharacter  = "invalid_character"
	CodeBatchTooLarge     = "batch_too_large"
)

// UnknownCountryError carries the country code that was not found.
type UnknownCountryError struct {
	Country string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Country)
}

func (e *UnknownCountryError) Unwrap() error { return ErrUnknownCountry }

func (e *UnknownCountryError) Code() string { return CodeUnknownCountry }

// LengthError carries the grouped value whose BBAN length is wrong.
type LengthError struct {
	Value    string
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf(
		"length of %q not correct: bban has %d characters, expected %d",
		e.Value, e.Actual, e.Expected,
	)
}

func (e *LengthError) Unwrap() error { return ErrIncorrectLength }

func (e *LengthError) Code() string { return CodeIncorrectLength }

// ChecksumError carries the grouped IBAN whose check digits do not verify.
type ChecksumError struct {
	Value string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum of %q not correct", e.Value)
}

func (e *ChecksumError) Unwrap() error { return ErrIncorrectChecksum }

func (e *ChecksumError) Code() string { return CodeIncorrectChecksum }

// MalformedSpecError carries the registry record that failed validation and the cause.
type MalformedSpecError struct {
	Record Record
	Err    error
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("malformed spec for country %q: %v", e.Record.Country, e.Err)
}

func (e *MalformedSpecError) Unwrap() []error { return []error{ErrMalformedSpec, e.Err} }

func (e *MalformedSpecError) Code() string { return CodeMalformedSpec }

// InvalidCharacterError carries the offending character and its zero-based position.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

func (e *InvalidCharacterError) Code() string { return CodeInvalidCharacter }

// ErrorCode returns the machine readable code for a domain error, or "" if err is not one.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownCountry):
		return CodeUnknownCountry
	case errors.Is(err, ErrIncorrectLength):
		return CodeIncorrectLength
	case errors.Is(err, ErrIncorrectChecksum):
		return CodeIncorrectChecksum
	case errors.Is(err, ErrMalformedSpec):
		return CodeMalformedSpec
	case errors.Is(err, ErrInvalidCharacter):
		return CodeInvalidCharacter
	default:
		return ""
	}
}
