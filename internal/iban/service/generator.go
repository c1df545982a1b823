package service

import (
	"strings"
	"unicode/utf8"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// Generator builds IBANs from a country code and a bank specific account body.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	specs    SpecLookup
	checksum Checksum
}

// NewGenerator creates a Generator backed by the given spec lookup and checksum.
func NewGenerator(specs SpecLookup, checksum Checksum) *Generator {
	return &Generator{
		specs:    specs,
		checksum: checksum,
	}
}

// Generate returns the IBAN for country and body in print format.
func (g *Generator) Generate(country, body string) (string, error) {
	iban, err := g.Build(country, body)
	if err != nil {
		return "", err
	}
	return iban.String(), nil
}

// Build computes the check digits for body and returns the assembled IBAN.
//
// Whitespace in body is ignored. A body shorter than the country's BBAN length is
// left padded with '0'; a longer body is rejected, never truncated.
func (g *Generator) Build(country, body string) (*domain.IBAN, error) {
	spec, err := g.specs.Lookup(country)
	if err != nil {
		return nil, err
	}

	bban := domain.Normalize(body)
	if missing := spec.BBANLength() - utf8.RuneCountInString(bban); missing > 0 {
		bban = strings.Repeat("0", missing) + bban
	}

	if n := utf8.RuneCountInString(bban); n != spec.BBANLength() {
		return nil, &domain.LengthError{
			Value:    domain.Group(bban),
			Expected: spec.BBANLength(),
			Actual:   n,
		}
	}

	checkDigits, err := g.checksum.CheckDigits(country, bban)
	if err != nil {
		return nil, err
	}

	return &domain.IBAN{
		Country:     country,
		CheckDigits: checkDigits,
		BBAN:        bban,
	}, nil
}
