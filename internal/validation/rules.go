// Package validation provides custom validation rules shared by registry records and HTTP DTOs.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/ibancheck/internal/errors"
)

var (
	// countryCodeRegex matches an ISO 3166 alpha-2 code in upper case.
	countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// CountryCode validates that a string is exactly two ASCII uppercase letters.
// Lower-case codes are rejected rather than folded.
var CountryCode = validation.NewStringRuleWithError(
	func(s string) bool {
		return countryCodeRegex.MatchString(s)
	},
	validation.NewError("validation_country_code", "must be two uppercase letters"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Printable validates that a string only holds printable characters or whitespace.
// Control bytes in account numbers are almost always copy/paste damage.
var Printable = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_printable", "must contain only printable characters"),
)
