package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ibancheck/internal/iban/domain"
	usecaseMocks "github.com/allisson/ibancheck/internal/iban/usecase/mocks"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordValidation(ctx context.Context, country, outcome string) {
	m.Called(ctx, country, outcome)
}

func (m *mockBusinessMetrics) RecordBatchSize(ctx context.Context, size int) {
	m.Called(ctx, size)
}

func expectOperation(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "iban", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "iban", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestIbanUseCaseWithMetrics_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsValid", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockIbanUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

		iban := &domain.IBAN{Country: "DE", CheckDigits: "54", BBAN: "550200008837813212"}
		mockNext.On("Validate", ctx, "DE54550200008837813212").Return(iban, nil).Once()
		expectOperation(mockMetrics, "validate", "success")
		mockMetrics.On("RecordValidation", mock.Anything, "DE", "valid").Once()

		got, err := uc.Validate(ctx, "DE54550200008837813212")
		require.NoError(t, err)
		assert.Equal(t, iban, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsOutcomeCode", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockIbanUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

		checksumErr := &domain.ChecksumError{Value: "DE55 5502 0000 8837 8132 12"}
		mockNext.On("Validate", ctx, " DE55550200008837813212").Return(nil, checksumErr).Once()
		expectOperation(mockMetrics, "validate", "error")
		mockMetrics.On("RecordValidation", mock.Anything, "DE", domain.CodeIncorrectChecksum).Once()

		_, err := uc.Validate(ctx, " DE55550200008837813212")
		assert.Equal(t, checksumErr, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_UnknownCountryNotLabelled", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockIbanUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Validate", ctx, "QQ00").Return(nil, &domain.UnknownCountryError{Country: "QQ"}).Once()
		expectOperation(mockMetrics, "validate", "error")
		mockMetrics.On("RecordValidation", mock.Anything, "unknown", domain.CodeUnknownCountry).Once()

		_, err := uc.Validate(ctx, "QQ00")
		assert.ErrorIs(t, err, domain.ErrUnknownCountry)
		mockMetrics.AssertExpectations(t)
	})
}

func TestIbanUseCaseWithMetrics_ValidateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockIbanUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

		inputs := []string{"NL80ABNA4353368141", "NL12BANK12345678"}
		results := []domain.ValidationResult{
			{Input: inputs[0], IBAN: &domain.IBAN{Country: "NL", CheckDigits: "80", BBAN: "ABNA4353368141"}},
			{Input: inputs[1], Err: &domain.LengthError{Value: "NL12 BANK 1234 5678", Expected: 14, Actual: 12}},
		}
		mockNext.On("ValidateBatch", ctx, inputs).Return(results, nil).Once()
		expectOperation(mockMetrics, "validate_batch", "success")
		mockMetrics.On("RecordBatchSize", mock.Anything, 2).Once()
		mockMetrics.On("RecordValidation", mock.Anything, "NL", "valid").Once()
		mockMetrics.On("RecordValidation", mock.Anything, "NL", domain.CodeIncorrectLength).Once()

		got, err := uc.ValidateBatch(ctx, inputs)
		require.NoError(t, err)
		assert.Equal(t, results, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_BatchRejected", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockIbanUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

		inputs := []string{"a", "b", "c"}
		mockNext.On("ValidateBatch", ctx, inputs).Return(nil, domain.ErrBatchTooLarge).Once()
		expectOperation(mockMetrics, "validate_batch", "error")
		mockMetrics.On("RecordBatchSize", mock.Anything, 3).Once()

		got, err := uc.ValidateBatch(ctx, inputs)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrBatchTooLarge)
		mockMetrics.AssertExpectations(t)
	})
}

func TestIbanUseCaseWithMetrics_Generate(t *testing.T) {
	ctx := context.Background()
	mockNext := usecaseMocks.NewMockIbanUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

	iban := &domain.IBAN{Country: "NL", CheckDigits: "80", BBAN: "ABNA4353368141"}
	mockNext.On("Generate", ctx, "NL", "ABNA4353368141").Return(iban, nil).Once()
	mockNext.On("Generate", ctx, "XX", "1").Return(nil, &domain.UnknownCountryError{Country: "XX"}).Once()
	expectOperation(mockMetrics, "generate", "success")
	expectOperation(mockMetrics, "generate", "error")

	got, err := uc.Generate(ctx, "NL", "ABNA4353368141")
	require.NoError(t, err)
	assert.Equal(t, iban, got)

	_, err = uc.Generate(ctx, "XX", "1")
	assert.Error(t, err)
	mockMetrics.AssertExpectations(t)
}

func TestIbanUseCaseWithMetrics_Specs(t *testing.T) {
	ctx := context.Background()
	mockNext := usecaseMocks.NewMockIbanUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := NewIbanUseCaseWithMetrics(mockNext, mockMetrics)

	spec, err := domain.NewSpec("DE", "Germany", 18, nil)
	require.NoError(t, err)

	mockNext.On("GetSpec", ctx, "DE").Return(spec, nil).Once()
	mockNext.On("ListSpecs", ctx, 0, 50).Return([]domain.Spec{spec}, 1, nil).Once()
	expectOperation(mockMetrics, "spec_get", "success")
	expectOperation(mockMetrics, "spec_list", "success")

	got, err := uc.GetSpec(ctx, "DE")
	require.NoError(t, err)
	assert.Equal(t, spec, got)

	specs, total, err := uc.ListSpecs(ctx, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, []domain.Spec{spec}, specs)
	mockMetrics.AssertExpectations(t)
}

func TestRegistryUseCaseWithMetrics_Seed(t *testing.T) {
	ctx := context.Background()
	mockNext := usecaseMocks.NewMockRegistryUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := NewRegistryUseCaseWithMetrics(mockNext, mockMetrics)

	records := []domain.Record{{Country: "DE", CountryName: "Germany", BBANLength: 18}}
	mockNext.On("Seed", ctx, records).Return(1, nil).Once()
	mockNext.On("Seed", ctx, []domain.Record(nil)).Return(0, errors.New("db down")).Once()
	mockMetrics.On("RecordOperation", mock.Anything, "registry", "seed", "success").Once()
	mockMetrics.On("RecordDuration", mock.Anything, "registry", "seed", mock.AnythingOfType("time.Duration"), "success").Once()
	mockMetrics.On("RecordOperation", mock.Anything, "registry", "seed", "error").Once()
	mockMetrics.On("RecordDuration", mock.Anything, "registry", "seed", mock.AnythingOfType("time.Duration"), "error").Once()

	n, err := uc.Seed(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = uc.Seed(ctx, nil)
	assert.Error(t, err)
	mockMetrics.AssertExpectations(t)
}
