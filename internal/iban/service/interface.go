// Package service implements the IBAN algorithms: ISO 7064 numeric encoding, the MOD 97-10
// checksum, and the validator and generator built on top of them.
package service

import (
	"github.com/allisson/ibancheck/internal/iban/domain"
)

// SpecLookup resolves a country code to its spec.
// Implementations return a *domain.UnknownCountryError for unregistered codes.
type SpecLookup interface {
	Lookup(country string) (domain.Spec, error)
}

// Checksum defines the check digit algorithm shared by validation and generation.
type Checksum interface {
	// Remainder returns the numeric encoding of s modulo 97.
	Remainder(s string) (int, error)

	// CheckDigits computes the two check digits for bban in the given country.
	CheckDigits(country, bban string) (string, error)

	// Verify reports whether checkDigits are correct for country and bban.
	Verify(country, checkDigits, bban string) (bool, error)
}
