package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records IBAN use case activity.
type BusinessMetrics interface {
	// RecordOperation counts one use case call, e.g. ("iban", "validate", "success").
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long a use case call took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordValidation counts one validated IBAN by country and outcome.
	// Outcome is "valid" or the error code of the failure.
	RecordValidation(ctx context.Context, country, outcome string)

	// RecordBatchSize records the number of inputs of a batch request.
	RecordBatchSize(ctx context.Context, size int)
}

type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHisto     metric.Float64Histogram
	validationCounter metric.Int64Counter
	batchSizeHisto    metric.Int64Histogram
}

// NewBusinessMetrics creates the business instruments, prefixing every name with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	validationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_validations_total", namespace),
		metric.WithDescription("Total number of validated IBANs by country and outcome"),
		metric.WithUnit("{iban}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation counter: %w", err)
	}

	batchSizeHisto, err := meter.Int64Histogram(
		fmt.Sprintf("%s_batch_size", namespace),
		metric.WithDescription("Number of IBANs per batch validation request"),
		metric.WithUnit("{iban}"),
		metric.WithExplicitBucketBoundaries(1, 10, 50, 100, 500, 1000),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch size histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHisto:     durationHisto,
		validationCounter: validationCounter,
		batchSizeHisto:    batchSizeHisto,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordValidation(ctx context.Context, country, outcome string) {
	b.validationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("country", country),
			attribute.String("outcome", outcome),
		),
	)
}

func (b *businessMetrics) RecordBatchSize(ctx context.Context, size int) {
	b.batchSizeHisto.Record(ctx, int64(size))
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordValidation(ctx context.Context, country, outcome string) {}

func (n *NoOpBusinessMetrics) RecordBatchSize(ctx context.Context, size int) {}
