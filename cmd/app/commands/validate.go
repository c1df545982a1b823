package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/ibancheck/internal/iban/domain"
	ibanUseCase "github.com/allisson/ibancheck/internal/iban/usecase"
)

type validationOutput struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	IBAN    string `json:"iban,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// RunValidate validates every input and prints one result per input in input order.
// Returns an error when at least one input is not a valid IBAN, so the exit status
// can be used in scripts.
func RunValidate(
	ctx context.Context,
	useCase ibanUseCase.IbanUseCase,
	logger *slog.Logger,
	writer io.Writer,
	inputs []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("at least one IBAN is required")
	}

	results, err := useCase.ValidateBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to validate: %w", err)
	}

	outputs := make([]validationOutput, 0, len(results))
	invalid := 0
	for _, result := range results {
		out := validationOutput{Input: result.Input, Valid: result.Valid()}
		if result.Valid() {
			out.IBAN = result.IBAN.String()
		} else {
			invalid++
			out.Error = domain.ErrorCode(result.Err)
			out.Message = result.Err.Error()
		}
		outputs = append(outputs, out)
	}

	if format == FormatJSON {
		if err := writeJSON(writer, outputs); err != nil {
			return err
		}
	} else {
		for _, out := range outputs {
			if out.Valid {
				_, _ = fmt.Fprintf(writer, "%s: valid\n", out.IBAN)
			} else {
				_, _ = fmt.Fprintf(writer, "%s: invalid (%s)\n", out.Input, out.Message)
			}
		}
	}

	logger.Debug("validation completed",
		slog.Int("total", len(outputs)),
		slog.Int("invalid", invalid),
	)

	if invalid > 0 {
		return fmt.Errorf("%d of %d inputs are not valid IBANs", invalid, len(outputs))
	}
	return nil
}
