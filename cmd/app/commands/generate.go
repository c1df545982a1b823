package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	ibanUseCase "github.com/allisson/ibancheck/internal/iban/usecase"
)

// RunGenerate computes the check digits for an account body and prints the IBAN.
// A body shorter than the country's BBAN length is left padded with zeros.
func RunGenerate(
	ctx context.Context,
	useCase ibanUseCase.IbanUseCase,
	logger *slog.Logger,
	writer io.Writer,
	country string,
	bban string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	iban, err := useCase.Generate(ctx, country, bban)
	if err != nil {
		return fmt.Errorf("failed to generate iban: %w", err)
	}

	logger.Debug("iban generated",
		slog.String("country", iban.Country),
		slog.String("check_digits", iban.CheckDigits),
	)

	if format == FormatJSON {
		return writeJSON(writer, map[string]string{
			"iban":         iban.Electronic(),
			"formatted":    iban.String(),
			"country":      iban.Country,
			"check_digits": iban.CheckDigits,
			"bban":         iban.BBAN,
		})
	}

	_, err = fmt.Fprintln(writer, iban.String())
	return err
}
