package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// BatchConfig bounds ValidateBatch.
type BatchConfig struct {
	MaxSize     int
	Concurrency int
}

type ibanUseCase struct {
	parser  IbanParser
	builder IbanBuilder
	catalog SpecCatalog
	batch   BatchConfig
}

func (i *ibanUseCase) Validate(ctx context.Context, raw string) (*domain.IBAN, error) {
	return i.parser.Parse(raw)
}

func (i *ibanUseCase) ValidateBatch(
	ctx context.Context,
	inputs []string,
) ([]domain.ValidationResult, error) {
	if i.batch.MaxSize > 0 && len(inputs) > i.batch.MaxSize {
		return nil, &batchSizeError{size: len(inputs), max: i.batch.MaxSize}
	}

	results := make([]domain.ValidationResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if i.batch.Concurrency > 0 {
		g.SetLimit(i.batch.Concurrency)
	}

	for idx, raw := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			iban, err := i.parser.Parse(raw)
			results[idx] = domain.ValidationResult{Input: raw, IBAN: iban, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (i *ibanUseCase) Generate(ctx context.Context, country, body string) (*domain.IBAN, error) {
	return i.builder.Build(country, body)
}

func (i *ibanUseCase) GetSpec(ctx context.Context, country string) (domain.Spec, error) {
	return i.catalog.Lookup(country)
}

func (i *ibanUseCase) ListSpecs(ctx context.Context, offset, limit int) ([]domain.Spec, int, error) {
	specs := i.catalog.Specs()
	total := len(specs)

	if offset >= total {
		return []domain.Spec{}, total, nil
	}
	end := total
	if limit > 0 {
		end = min(offset+limit, total)
	}
	return specs[offset:end], total, nil
}

// NewIbanUseCase creates the IBAN use case. A zero MaxSize or Concurrency means unbounded.
func NewIbanUseCase(
	parser IbanParser,
	builder IbanBuilder,
	catalog SpecCatalog,
	batch BatchConfig,
) IbanUseCase {
	return &ibanUseCase{
		parser:  parser,
		builder: builder,
		catalog: catalog,
		batch:   batch,
	}
}
