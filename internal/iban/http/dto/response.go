package dto

import (
	"github.com/allisson/ibancheck/internal/httputil"
	"github.com/allisson/ibancheck/internal/iban/domain"
)

// IBANResponse represents an IBAN split into its parts.
type IBANResponse struct {
	IBAN        string `json:"iban"`
	Formatted   string `json:"formatted"`
	Country     string `json:"country"`
	CheckDigits string `json:"check_digits"`
	BBAN        string `json:"bban"`
}

// MapIBANToResponse maps a domain IBAN to its response.
func MapIBANToResponse(iban *domain.IBAN) IBANResponse {
	return IBANResponse{
		IBAN:        iban.Electronic(),
		Formatted:   iban.String(),
		Country:     iban.Country,
		CheckDigits: iban.CheckDigits,
		BBAN:        iban.BBAN,
	}
}

// ValidationResponse reports whether one input is a valid IBAN.
// Error holds the machine readable failure code and Message the human readable reason.
type ValidationResponse struct {
	Input   string        `json:"input,omitempty"`
	Valid   bool          `json:"valid"`
	IBAN    *IBANResponse `json:"iban,omitempty"`
	Error   string        `json:"error,omitempty"`
	Message string        `json:"message,omitempty"`
}

// MapValidationToResponse maps the outcome of validating one input.
func MapValidationToResponse(iban *domain.IBAN, err error) ValidationResponse {
	if err != nil {
		return ValidationResponse{
			Valid:   false,
			Error:   domain.ErrorCode(err),
			Message: err.Error(),
		}
	}

	response := MapIBANToResponse(iban)
	return ValidationResponse{
		Valid: true,
		IBAN:  &response,
	}
}

// BatchValidationResponse lists per-input results in request order.
type BatchValidationResponse struct {
	Data    []ValidationResponse `json:"data"`
	Valid   int                  `json:"valid"`
	Invalid int                  `json:"invalid"`
}

// MapValidationResultsToResponse maps batch results, keeping their order.
func MapValidationResultsToResponse(results []domain.ValidationResult) BatchValidationResponse {
	response := BatchValidationResponse{
		Data: make([]ValidationResponse, 0, len(results)),
	}

	for _, result := range results {
		item := MapValidationToResponse(result.IBAN, result.Err)
		item.Input = result.Input
		if item.Valid {
			response.Valid++
		} else {
			response.Invalid++
		}
		response.Data = append(response.Data, item)
	}

	return response
}

// CountryResponse represents the registry entry of one country.
type CountryResponse struct {
	Country     string            `json:"country"`
	CountryName string            `json:"country_name"`
	BBANLength  int               `json:"bban_length"`
	IBANLength  int               `json:"iban_length"`
	Examples    map[string]string `json:"examples,omitempty"`
}

// MapSpecToResponse maps a registry spec to its response.
func MapSpecToResponse(spec domain.Spec) CountryResponse {
	return CountryResponse{
		Country:     spec.Country(),
		CountryName: spec.Name(),
		BBANLength:  spec.BBANLength(),
		IBANLength:  spec.FullLength(),
		Examples:    spec.Examples(),
	}
}

// ListCountriesResponse represents a page of registry entries.
type ListCountriesResponse struct {
	Data       []CountryResponse `json:"data"`
	Pagination httputil.PageMeta `json:"pagination"`
}

// MapSpecsToListResponse maps a page of specs. Returns an empty list instead of null.
func MapSpecsToListResponse(specs []domain.Spec, offset, limit, total int) ListCountriesResponse {
	items := make([]CountryResponse, 0, len(specs))
	for _, spec := range specs {
		items = append(items, MapSpecToResponse(spec))
	}

	return ListCountriesResponse{
		Data: items,
		Pagination: httputil.PageMeta{
			Offset: offset,
			Limit:  limit,
			Total:  total,
		},
	}
}
