package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/allisson/ibancheck/internal/iban/domain"
	ibanUseCase "github.com/allisson/ibancheck/internal/iban/usecase"
)

type countryOutput struct {
	Country     string            `json:"country"`
	CountryName string            `json:"country_name"`
	BBANLength  int               `json:"bban_length"`
	IBANLength  int               `json:"iban_length"`
	Examples    map[string]string `json:"examples,omitempty"`

	exampleKinds []string
}

func toCountryOutput(spec domain.Spec) countryOutput {
	return countryOutput{
		Country:     spec.Country(),
		CountryName: spec.Name(),
		BBANLength:  spec.BBANLength(),
		IBANLength:  spec.FullLength(),
		Examples:    spec.Examples(),

		exampleKinds: spec.ExampleKinds(),
	}
}

// RunCountries prints the registry. With a country code only that entry is printed,
// including its examples.
func RunCountries(
	ctx context.Context,
	useCase ibanUseCase.IbanUseCase,
	writer io.Writer,
	country string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if country != "" {
		spec, err := useCase.GetSpec(ctx, country)
		if err != nil {
			return fmt.Errorf("failed to get country: %w", err)
		}
		return outputCountry(writer, toCountryOutput(spec), format)
	}

	specs, total, err := useCase.ListSpecs(ctx, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to list countries: %w", err)
	}

	outputs := make([]countryOutput, 0, len(specs))
	for _, spec := range specs {
		outputs = append(outputs, toCountryOutput(spec))
	}

	if format == FormatJSON {
		return writeJSON(writer, map[string]any{
			"data":  outputs,
			"total": total,
		})
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CODE\tNAME\tBBAN\tIBAN")
	for _, out := range outputs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", out.Country, out.CountryName, out.BBANLength, out.IBANLength)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "%d countries\n", total)
	return err
}

func outputCountry(writer io.Writer, out countryOutput, format string) error {
	if format == FormatJSON {
		return writeJSON(writer, out)
	}

	_, _ = fmt.Fprintf(writer, "Country:     %s (%s)\n", out.Country, out.CountryName)
	_, _ = fmt.Fprintf(writer, "BBAN length: %d\n", out.BBANLength)
	_, _ = fmt.Fprintf(writer, "IBAN length: %d\n", out.IBANLength)
	for _, kind := range out.exampleKinds {
		_, _ = fmt.Fprintf(writer, "Example %s: %s\n", kind, out.Examples[kind])
	}
	return nil
}
