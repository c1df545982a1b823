package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine matches a Prometheus sample by name, partial labels and value. The
// exporter adds OTel scope labels, so labels are matched as a regular expression.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)
	assert.IsType(t, &businessMetrics{}, bm)
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "iban", "validate", StatusSuccess)
	bm.RecordOperation(ctx, "iban", "validate", StatusSuccess)
	bm.RecordOperation(ctx, "iban", "validate", StatusError)
	bm.RecordOperation(ctx, "iban", "generate", StatusSuccess)

	bm.RecordDuration(ctx, "iban", "validate", 2*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "iban", "validate", 3*time.Millisecond, StatusSuccess)

	bm.RecordValidation(ctx, "DE", "valid")
	bm.RecordValidation(ctx, "DE", "incorrect_checksum")
	bm.RecordValidation(ctx, "DE", "valid")

	bm.RecordBatchSize(ctx, 3)
	bm.RecordBatchSize(ctx, 120)

	output := scrape(t, provider)

	assertMetricLine(t, output, `integration_test_operations_total`,
		`domain="iban".*operation="validate".*status="success"`, `2`)
	assertMetricLine(t, output, `integration_test_operations_total`,
		`domain="iban".*operation="validate".*status="error"`, `1`)
	assertMetricLine(t, output, `integration_test_operations_total`,
		`domain="iban".*operation="generate".*status="success"`, `1`)
	assertMetricLine(t, output, `integration_test_operation_duration_seconds_count`,
		`domain="iban".*operation="validate".*status="success"`, `2`)
	assertMetricLine(t, output, `integration_test_validations_total`,
		`country="DE".*outcome="valid"`, `2`)
	assertMetricLine(t, output, `integration_test_validations_total`,
		`country="DE".*outcome="incorrect_checksum"`, `1`)
	assertMetricLine(t, output, `integration_test_batch_size_count`, ``, `2`)
	assertMetricLine(t, output, `integration_test_batch_size_sum`, ``, `123`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, bm)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		bm.RecordOperation(ctx, "iban", "validate", StatusSuccess)
		bm.RecordDuration(ctx, "iban", "validate", time.Millisecond, StatusError)
		bm.RecordValidation(ctx, "NL", "valid")
		bm.RecordBatchSize(ctx, 10)
	})
}
