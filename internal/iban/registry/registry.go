// Package registry holds the immutable country code to spec mapping and the loaders that
// build it from JSON registry data, the embedded default data set, or a database.
package registry

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// RecordSource supplies registry records from external storage.
type RecordSource interface {
	ListRecords(ctx context.Context) ([]domain.Record, error)
}

// Registry maps country codes to specs. It is built once and never mutated afterwards,
// so it can be shared across goroutines without locking.
type Registry struct {
	specs map[string]domain.Spec
}

// New validates every record and builds a Registry from them.
// Records are applied in order; a later record for the same country replaces an earlier one.
// The first invalid record aborts construction with a *domain.MalformedSpecError.
func New(records []domain.Record) (*Registry, error) {
	specs := make(map[string]domain.Spec, len(records))
	for _, rec := range records {
		spec, err := rec.Spec()
		if err != nil {
			return nil, err
		}
		specs[spec.Country()] = spec
	}
	return &Registry{specs: specs}, nil
}

// FromSource builds a Registry from the records returned by source.
func FromSource(ctx context.Context, source RecordSource) (*Registry, error) {
	records, err := source.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry records: %w", err)
	}
	return New(records)
}

// Lookup returns the spec for country or a *domain.UnknownCountryError.
// The code must match exactly; lower-case codes are not folded.
func (r *Registry) Lookup(country string) (domain.Spec, error) {
	spec, ok := r.specs[country]
	if !ok {
		return domain.Spec{}, &domain.UnknownCountryError{Country: country}
	}
	return spec, nil
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Countries returns the registered country codes in ascending order.
func (r *Registry) Countries() []string {
	return slices.Sorted(maps.Keys(r.specs))
}

// Specs returns every spec ordered by country code.
func (r *Registry) Specs() []domain.Spec {
	specs := make([]domain.Spec, 0, len(r.specs))
	for _, country := range r.Countries() {
		specs = append(specs, r.specs[country])
	}
	return specs
}

// Records returns every spec in raw record form, ordered by country code.
func (r *Registry) Records() []domain.Record {
	records := make([]domain.Record, 0, len(r.specs))
	for _, spec := range r.Specs() {
		records = append(records, spec.Record())
	}
	return records
}
