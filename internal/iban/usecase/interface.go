// Package usecase orchestrates IBAN validation, generation, registry queries and registry
// seeding on top of the service and repository layers.
package usecase

import (
	"context"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// IbanParser validates a raw IBAN and returns its parts.
type IbanParser interface {
	Parse(raw string) (*domain.IBAN, error)
}

// IbanBuilder assembles an IBAN from a country code and an account body.
type IbanBuilder interface {
	Build(country, body string) (*domain.IBAN, error)
}

// SpecCatalog gives read access to the registry.
type SpecCatalog interface {
	Lookup(country string) (domain.Spec, error)
	Specs() []domain.Spec
}

// SpecRepository persists registry records.
type SpecRepository interface {
	ListRecords(ctx context.Context) ([]domain.Record, error)
	Upsert(ctx context.Context, record domain.Record) error
}

// IbanUseCase defines the IBAN operations exposed by the API and the CLI.
type IbanUseCase interface {
	// Validate checks raw and returns the parsed IBAN. Whitespace is ignored.
	Validate(ctx context.Context, raw string) (*domain.IBAN, error)

	// ValidateBatch validates every input with bounded concurrency. Results keep the input
	// order and carry per-input errors; the returned error is reserved for the batch itself
	// (too large, or ctx cancelled).
	ValidateBatch(ctx context.Context, inputs []string) ([]domain.ValidationResult, error)

	// Generate computes the check digits for body and returns the complete IBAN.
	Generate(ctx context.Context, country, body string) (*domain.IBAN, error)

	// GetSpec returns the registry entry for country.
	GetSpec(ctx context.Context, country string) (domain.Spec, error)

	// ListSpecs returns a page of registry entries ordered by country code and the total count.
	ListSpecs(ctx context.Context, offset, limit int) ([]domain.Spec, int, error)
}

// RegistryUseCase manages the database copy of the registry.
type RegistryUseCase interface {
	// Seed validates records and upserts them in a single transaction. Nothing is written
	// when any record is malformed. Returns the number of countries written.
	Seed(ctx context.Context, records []domain.Record) (int, error)
}
