package service

import (
	"fmt"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

const (
	modulus = 97

	// validRemainder is the remainder of every correct IBAN.
	validRemainder = 1

	// placeholderCheckDigits stand in for the check digits while computing them.
	placeholderCheckDigits = "00"
)

type mod97 struct{}

// NewMod97 creates the ISO 7064 MOD 97-10 checksum used by IBAN.
// The remainder is computed digit by digit, so inputs of any length never overflow.
func NewMod97() Checksum {
	return &mod97{}
}

// Remainder returns the numeric encoding of s modulo 97.
func (m *mod97) Remainder(s string) (int, error) {
	return remainder(segment{value: s})
}

// CheckDigits encodes bban + country + "00" and returns 98 minus the remainder,
// zero padded to two digits. The result is always within [02, 98].
func (m *mod97) CheckDigits(country, bban string) (string, error) {
	r, err := remainder(
		segment{value: bban, offset: domain.HeaderLength},
		segment{value: country, offset: 0},
		segment{value: placeholderCheckDigits, offset: domain.CountryCodeLength},
	)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", modulus+1-r), nil
}

// Verify moves the country code and check digits behind the BBAN and requires remainder 1.
func (m *mod97) Verify(country, checkDigits, bban string) (bool, error) {
	r, err := remainder(
		segment{value: bban, offset: domain.HeaderLength},
		segment{value: country, offset: 0},
		segment{value: checkDigits, offset: domain.CountryCodeLength},
	)
	if err != nil {
		return false, err
	}
	return r == validRemainder, nil
}

// remainder computes acc = (acc*10 + d) mod 97 over the encoded digits of segments.
func remainder(segments ...segment) (int, error) {
	acc := 0
	err := walkDigits(func(d int) {
		acc = (acc*10 + d) % modulus
	}, segments...)
	if err != nil {
		return 0, err
	}
	return acc, nil
}
