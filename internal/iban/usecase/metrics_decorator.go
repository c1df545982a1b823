package usecase

import (
	"context"
	"time"

	"github.com/allisson/ibancheck/internal/iban/domain"
	"github.com/allisson/ibancheck/internal/metrics"
)

const (
	metricsDomain = "iban"

	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
	countryUnknown = "unknown"
)

type ibanUseCaseWithMetrics struct {
	next    IbanUseCase
	metrics metrics.BusinessMetrics
}

// NewIbanUseCaseWithMetrics wraps an IbanUseCase with operation and validation metrics.
func NewIbanUseCaseWithMetrics(useCase IbanUseCase, m metrics.BusinessMetrics) IbanUseCase {
	return &ibanUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *ibanUseCaseWithMetrics) Validate(ctx context.Context, raw string) (*domain.IBAN, error) {
	start := time.Now()
	iban, err := i.next.Validate(ctx, raw)

	i.record(ctx, "validate", start, err)
	i.recordValidation(ctx, raw, iban, err)

	return iban, err
}

func (i *ibanUseCaseWithMetrics) ValidateBatch(
	ctx context.Context,
	inputs []string,
) ([]domain.ValidationResult, error) {
	start := time.Now()
	results, err := i.next.ValidateBatch(ctx, inputs)

	i.record(ctx, "validate_batch", start, err)
	i.metrics.RecordBatchSize(ctx, len(inputs))
	for _, result := range results {
		i.recordValidation(ctx, result.Input, result.IBAN, result.Err)
	}

	return results, err
}

func (i *ibanUseCaseWithMetrics) Generate(ctx context.Context, country, body string) (*domain.IBAN, error) {
	start := time.Now()
	iban, err := i.next.Generate(ctx, country, body)

	i.record(ctx, "generate", start, err)

	return iban, err
}

func (i *ibanUseCaseWithMetrics) GetSpec(ctx context.Context, country string) (domain.Spec, error) {
	start := time.Now()
	spec, err := i.next.GetSpec(ctx, country)

	i.record(ctx, "spec_get", start, err)

	return spec, err
}

func (i *ibanUseCaseWithMetrics) ListSpecs(ctx context.Context, offset, limit int) ([]domain.Spec, int, error) {
	start := time.Now()
	specs, total, err := i.next.ListSpecs(ctx, offset, limit)

	i.record(ctx, "spec_list", start, err)

	return specs, total, err
}

func (i *ibanUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	i.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	i.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// recordValidation labels by country only when the country is registered, which keeps the
// label set bounded by the registry size.
func (i *ibanUseCaseWithMetrics) recordValidation(
	ctx context.Context,
	raw string,
	iban *domain.IBAN,
	err error,
) {
	if err == nil && iban != nil {
		i.metrics.RecordValidation(ctx, iban.Country, outcomeValid)
		return
	}

	outcome := domain.ErrorCode(err)
	if outcome == "" {
		outcome = outcomeInvalid
	}

	country := countryUnknown
	if outcome != domain.CodeUnknownCountry {
		if normalized := []rune(domain.Normalize(raw)); len(normalized) >= domain.CountryCodeLength {
			country = string(normalized[:domain.CountryCodeLength])
		}
	}

	i.metrics.RecordValidation(ctx, country, outcome)
}

type registryUseCaseWithMetrics struct {
	next    RegistryUseCase
	metrics metrics.BusinessMetrics
}

// NewRegistryUseCaseWithMetrics wraps a RegistryUseCase with metrics recording.
func NewRegistryUseCaseWithMetrics(useCase RegistryUseCase, m metrics.BusinessMetrics) RegistryUseCase {
	return &registryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *registryUseCaseWithMetrics) Seed(ctx context.Context, records []domain.Record) (int, error) {
	start := time.Now()
	n, err := r.next.Seed(ctx, records)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	r.metrics.RecordOperation(ctx, "registry", "seed", status)
	r.metrics.RecordDuration(ctx, "registry", "seed", time.Since(start), status)

	return n, err
}
