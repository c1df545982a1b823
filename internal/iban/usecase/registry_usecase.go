package usecase

import (
	"context"
	"fmt"

	"github.com/allisson/ibancheck/internal/database"
	"github.com/allisson/ibancheck/internal/iban/domain"
	"github.com/allisson/ibancheck/internal/iban/registry"
)

type registryUseCase struct {
	txManager database.TxManager
	specRepo  SpecRepository
}

func (r *registryUseCase) Seed(ctx context.Context, records []domain.Record) (int, error) {
	// Building a registry validates every record and collapses duplicates (last wins).
	reg, err := registry.New(records)
	if err != nil {
		return 0, err
	}

	deduped := reg.Records()
	err = r.txManager.WithTx(ctx, func(ctx context.Context) error {
		for _, record := range deduped {
			if err := r.specRepo.Upsert(ctx, record); err != nil {
				return fmt.Errorf("failed to seed country %s: %w", record.Country, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(deduped), nil
}

// NewRegistryUseCase creates a RegistryUseCase writing through specRepo.
func NewRegistryUseCase(txManager database.TxManager, specRepo SpecRepository) RegistryUseCase {
	return &registryUseCase{
		txManager: txManager,
		specRepo:  specRepo,
	}
}
