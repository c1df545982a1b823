// Package mocks provides testify mocks for the IBAN use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// MockIbanUseCase is a mock of usecase.IbanUseCase.
type MockIbanUseCase struct {
	mock.Mock
}

// NewMockIbanUseCase creates a MockIbanUseCase whose expectations are asserted on cleanup.
func NewMockIbanUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIbanUseCase {
	m := &MockIbanUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIbanUseCase) Validate(ctx context.Context, raw string) (*domain.IBAN, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IBAN), args.Error(1)
}

func (m *MockIbanUseCase) ValidateBatch(
	ctx context.Context,
	inputs []string,
) ([]domain.ValidationResult, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationResult), args.Error(1)
}

func (m *MockIbanUseCase) Generate(ctx context.Context, country, body string) (*domain.IBAN, error) {
	args := m.Called(ctx, country, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IBAN), args.Error(1)
}

func (m *MockIbanUseCase) GetSpec(ctx context.Context, country string) (domain.Spec, error) {
	args := m.Called(ctx, country)
	return args.Get(0).(domain.Spec), args.Error(1)
}

func (m *MockIbanUseCase) ListSpecs(ctx context.Context, offset, limit int) ([]domain.Spec, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Spec), args.Int(1), args.Error(2)
}

// MockRegistryUseCase is a mock of usecase.RegistryUseCase.
type MockRegistryUseCase struct {
	mock.Mock
}

// NewMockRegistryUseCase creates a MockRegistryUseCase whose expectations are asserted on cleanup.
func NewMockRegistryUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegistryUseCase {
	m := &MockRegistryUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRegistryUseCase) Seed(ctx context.Context, records []domain.Record) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

// MockSpecRepository is a mock of usecase.SpecRepository.
type MockSpecRepository struct {
	mock.Mock
}

// NewMockSpecRepository creates a MockSpecRepository whose expectations are asserted on cleanup.
func NewMockSpecRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSpecRepository {
	m := &MockSpecRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSpecRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockSpecRepository) Upsert(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockTxManager is a mock of database.TxManager that runs fn inline unless an error is set.
type MockTxManager struct {
	mock.Mock
}

// NewMockTxManager creates a MockTxManager whose expectations are asserted on cleanup.
func NewMockTxManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTxManager {
	m := &MockTxManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
