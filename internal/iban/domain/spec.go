package domain

import (
	"maps"
	"slices"
)

// Spec is the structural rule set of one country. A Spec is only obtainable through
// Record.Spec or NewSpec, so every instance satisfies the registry invariants.
type Spec struct {
	country    string
	name       string
	bbanLength int
	examples   map[string]string
}

// NewSpec validates the arguments and returns the Spec they describe.
func NewSpec(country, name string, bbanLength int, examples map[string]string) (Spec, error) {
	return Record{
		Country:     country,
		CountryName: name,
		BBANLength:  bbanLength,
		Examples:    examples,
	}.Spec()
}

// Country returns the two letter country code.
func (s Spec) Country() string { return s.country }

// Name returns the display name of the country.
func (s Spec) Name() string { return s.name }

// BBANLength returns the exact length the BBAN must have.
func (s Spec) BBANLength() int { return s.bbanLength }

// FullLength returns the length of a complete electronic-format IBAN.
func (s Spec) FullLength() int { return s.bbanLength + HeaderLength }

// Example returns the documentation example of the given kind.
func (s Spec) Example(kind string) (string, bool) {
	v, ok := s.examples[kind]
	return v, ok
}

// Examples returns a copy of all documentation examples.
func (s Spec) Examples() map[string]string {
	return maps.Clone(s.examples)
}

// ExampleKinds returns the example kinds in sorted order.
func (s Spec) ExampleKinds() []string {
	return slices.Sorted(maps.Keys(s.examples))
}

// Record converts the spec back to its raw record form.
func (s Spec) Record() Record {
	return Record{
		Country:     s.country,
		CountryName: s.name,
		BBANLength:  s.bbanLength,
		Examples:    maps.Clone(s.examples),
	}
}
