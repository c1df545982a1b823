package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ibancheck/internal/iban/domain"
	"github.com/allisson/ibancheck/internal/iban/registry"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return NewGenerator(reg, NewMod97())
}

func TestGenerator_Generate(t *testing.T) {
	generator := newTestGenerator(t)

	tests := []struct {
		name     string
		country  string
		body     string
		expected string
	}{
		{
			name:     "grouped body",
			country:  "TR",
			body:     "6291 7873 9897 9883 433",
			expected: "TR43 0006 2917 8739 8979 8834 33",
		},
		{
			name:     "letters in body",
			country:  "NL",
			body:     "ABNA4353368141",
			expected: "NL80 ABNA 4353 3681 41",
		},
		{
			name:     "exact length",
			country:  "DE",
			body:     "370400440532013000",
			expected: "DE89 3704 0044 0532 0130 00",
		},
		{
			name:     "padded body",
			country:  "DE",
			body:     "532013000",
			expected: "DE57 0000 0000 0532 0130 00",
		},
		{
			name:     "empty body",
			country:  "NO",
			body:     "",
			expected: "NO13 0000 0000 000",
		},
		{
			name:     "letter O kept",
			country:  "MC",
			body:     "14508000407738719884O33",
			expected: "MC32 1450 8000 4077 3871 9884 O33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generator.Generate(tt.country, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGenerator_Build(t *testing.T) {
	generator := newTestGenerator(t)

	iban, err := generator.Build("BE", "1")
	require.NoError(t, err)
	assert.Equal(t, "BE", iban.Country)
	assert.Equal(t, "27", iban.CheckDigits)
	assert.Equal(t, "000000000001", iban.BBAN)
	assert.Equal(t, "BE27000000000001", iban.Electronic())
}

func TestGenerator_UnknownCountry(t *testing.T) {
	generator := newTestGenerator(t)

	for _, country := range []string{"XX", "de", "", "DEU"} {
		t.Run(country, func(t *testing.T) {
			got, err := generator.Generate(country, "123")
			assert.Empty(t, got)

			var countryErr *domain.UnknownCountryError
			require.ErrorAs(t, err, &countryErr)
			assert.Equal(t, country, countryErr.Country)
		})
	}
}

func TestGenerator_IncorrectLength(t *testing.T) {
	generator := newTestGenerator(t)

	got, err := generator.Generate("DE", "5502 0000 8837 8132 123")
	assert.Empty(t, got)
	assert.ErrorIs(t, err, domain.ErrIncorrectLength)

	var lengthErr *domain.LengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, "5502 0000 8837 8132 123", lengthErr.Value)
	assert.Equal(t, 18, lengthErr.Expected)
	assert.Equal(t, 19, lengthErr.Actual)
}

func TestGenerator_InvalidCharacter(t *testing.T) {
	generator := newTestGenerator(t)

	tests := []struct {
		name     string
		country  string
		body     string
		char     rune
		position int
	}{
		{name: "lower case body", country: "NL", body: "abna4353368141", char: 'a', position: 4},
		{name: "punctuation", country: "DE", body: "37040044053201300!", char: '!', position: 21},
		{name: "padded body", country: "DE", body: "1-2", char: '-', position: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generator.Generate(tt.country, tt.body)
			assert.ErrorIs(t, err, domain.ErrInvalidCharacter)

			var charErr *domain.InvalidCharacterError
			require.ErrorAs(t, err, &charErr)
			assert.Equal(t, tt.char, charErr.Char)
			assert.Equal(t, tt.position, charErr.Position)
		})
	}
}

func TestGenerator_RoundTrip(t *testing.T) {
	reg, err := registry.Default()
	require.NoError(t, err)

	generator := NewGenerator(reg, NewMod97())
	validator := NewValidator(reg, NewMod97())

	for _, spec := range reg.Specs() {
		t.Run(spec.Country(), func(t *testing.T) {
			bodies := []string{
				"",
				"1",
				strings.Repeat("9", spec.BBANLength()),
				strings.Repeat("7", spec.BBANLength()-3),
			}
			if example, ok := spec.Example(domain.ExampleBBAN); ok {
				bodies = append(bodies, example)
			}

			for _, body := range bodies {
				generated, err := generator.Generate(spec.Country(), body)
				require.NoError(t, err, body)

				assert.Equal(t, domain.Group(domain.Normalize(generated)), generated)
				assert.Len(t, domain.Normalize(generated), spec.FullLength())

				iban, err := validator.Parse(generated)
				require.NoError(t, err, generated)
				assert.GreaterOrEqual(t, iban.CheckDigits, "02")
				assert.LessOrEqual(t, iban.CheckDigits, "98")
			}
		})
	}
}
