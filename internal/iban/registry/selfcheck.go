package registry

import (
	"github.com/allisson/ibancheck/internal/iban/domain"
)

// IBANValidator validates a single IBAN string.
type IBANValidator interface {
	Validate(raw string) error
}

// ExampleFailure describes a registry example that did not validate.
type ExampleFailure struct {
	Country string
	Kind    string
	Example string
	Err     error
}

// SelfCheck validates the "iban" and "iban_format" examples of every spec and returns the
// ones that fail. Specs without examples are skipped.
func (r *Registry) SelfCheck(validator IBANValidator) []ExampleFailure {
	var failures []ExampleFailure
	for _, spec := range r.Specs() {
		for _, kind := range []string{domain.ExampleIBAN, domain.ExampleIBANFormat} {
			example, ok := spec.Example(kind)
			if !ok {
				continue
			}
			if err := validator.Validate(example); err != nil {
				failures = append(failures, ExampleFailure{
					Country: spec.Country(),
					Kind:    kind,
					Example: example,
					Err:     err,
				})
			}
		}
	}
	return failures
}
