package service

import (
	"unicode/utf8"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// Validator checks IBANs against the registry and the MOD 97-10 checksum.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	specs    SpecLookup
	checksum Checksum
}

// NewValidator creates a Validator backed by the given spec lookup and checksum.
func NewValidator(specs SpecLookup, checksum Checksum) *Validator {
	return &Validator{
		specs:    specs,
		checksum: checksum,
	}
}

// Validate returns nil when raw is a valid IBAN, otherwise the reason it is not.
func (v *Validator) Validate(raw string) error {
	_, err := v.Parse(raw)
	return err
}

// Parse validates raw and returns it split into its parts.
//
// Whitespace anywhere in raw is ignored. The checks run in order: country lookup,
// BBAN length, checksum. The BBAN content is not inspected beyond its length, and
// no case folding takes place.
func (v *Validator) Parse(raw string) (*domain.IBAN, error) {
	electronic := domain.Normalize(raw)
	country, checkDigits, bban := split(electronic)

	spec, err := v.specs.Lookup(country)
	if err != nil {
		return nil, err
	}

	if n := utf8.RuneCountInString(bban); n != spec.BBANLength() {
		return nil, &domain.LengthError{
			Value:    domain.Group(electronic),
			Expected: spec.BBANLength(),
			Actual:   n,
		}
	}

	ok, err := v.checksum.Verify(country, checkDigits, bban)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ChecksumError{Value: domain.Group(electronic)}
	}

	return &domain.IBAN{
		Country:     country,
		CheckDigits: checkDigits,
		BBAN:        bban,
	}, nil
}

// split cuts an electronic-format IBAN into country, check digits and BBAN.
// Inputs shorter than the header yield short (possibly empty) parts.
func split(s string) (country, checkDigits, bban string) {
	runes := []rune(s)
	part := func(from, to int) string {
		from = min(from, len(runes))
		to = min(to, len(runes))
		return string(runes[from:to])
	}
	return part(0, domain.CountryCodeLength),
		part(domain.CountryCodeLength, domain.HeaderLength),
		part(domain.HeaderLength, len(runes))
}
