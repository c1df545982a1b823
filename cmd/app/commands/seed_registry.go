package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/ibancheck/internal/iban/domain"
	"github.com/allisson/ibancheck/internal/iban/registry"
	ibanUseCase "github.com/allisson/ibancheck/internal/iban/usecase"
)

// loadSeedRecords reads records from path, or the embedded registry data when path is empty.
func loadSeedRecords(path string) ([]domain.Record, error) {
	if path == "" {
		return registry.DefaultRecords()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return registry.Decode(f)
}

// RunSeedRegistry upserts registry records into the database in a single transaction.
// Every record is validated before anything is written.
//
// Requirements: Database must be migrated and accessible.
func RunSeedRegistry(
	ctx context.Context,
	useCase ibanUseCase.RegistryUseCase,
	logger *slog.Logger,
	writer io.Writer,
	file string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	source := "embedded"
	if file != "" {
		source = file
	}

	logger.Info("seeding registry", slog.String("source", source))

	records, err := loadSeedRecords(file)
	if err != nil {
		return err
	}

	count, err := useCase.Seed(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to seed registry: %w", err)
	}

	logger.Info("registry seeded", slog.Int("count", count), slog.String("source", source))

	if format == FormatJSON {
		return writeJSON(writer, map[string]any{
			"count":  count,
			"source": source,
		})
	}

	_, err = fmt.Fprintf(writer, "Seeded %d countries from %s\n", count, source)
	return err
}
