package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/ibancheck/internal/iban/domain"
	ibanMocks "github.com/allisson/ibancheck/internal/iban/usecase/mocks"
)

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	iban := &domain.IBAN{Country: "TR", CheckDigits: "43", BBAN: "0006291787398979883433"}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := ibanMocks.NewMockIbanUseCase(t)
		mockUseCase.On("Generate", ctx, "TR", "6291 7873 9897 9883 433").Return(iban, nil)

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, logger, &out, "TR", "6291 7873 9897 9883 433", "text")

		require.NoError(t, err)
		require.Equal(t, "TR43 0006 2917 8739 8979 8834 33\n", out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := ibanMocks.NewMockIbanUseCase(t)
		mockUseCase.On("Generate", ctx, "TR", "6291787398979883433").Return(iban, nil)

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, logger, &out, "TR", "6291787398979883433", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"iban": "TR430006291787398979883433"`)
		require.Contains(t, out.String(), `"check_digits": "43"`)
	})

	t.Run("unknown-country", func(t *testing.T) {
		mockUseCase := ibanMocks.NewMockIbanUseCase(t)
		mockUseCase.On("Generate", ctx, "XX", "1").Return(nil, &domain.UnknownCountryError{Country: "XX"})

		err := RunGenerate(ctx, mockUseCase, logger, &bytes.Buffer{}, "XX", "1", "text")

		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrUnknownCountry)
		require.Contains(t, err.Error(), "failed to generate iban")
	})
}
