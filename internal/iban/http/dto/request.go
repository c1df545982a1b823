// Package dto provides data transfer objects for the IBAN HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/ibancheck/internal/validation"
)

// maxInputLength bounds a single IBAN or account body, spaces included.
const maxInputLength = 128

// ValidateIBANRequest contains the IBAN to validate, in print or electronic format.
type ValidateIBANRequest struct {
	IBAN string `json:"iban"`
}

// Validate checks if the validate request is valid.
func (r *ValidateIBANRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IBAN,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Printable,
			validation.RuneLength(1, maxInputLength),
		),
	)
}

// BatchValidateRequest contains the IBANs to validate in one call.
type BatchValidateRequest struct {
	IBANs []string `json:"ibans"`
}

// Validate checks if the batch request is valid. The maximum batch size is enforced by the
// use case, which knows the configured limit.
func (r *BatchValidateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IBANs,
			validation.Required,
			validation.Each(customValidation.Printable, validation.RuneLength(0, maxInputLength)),
		),
	)
}

// GenerateIBANRequest contains the country and account body to build an IBAN from.
// An empty or short BBAN is left padded with zeros.
type GenerateIBANRequest struct {
	Country string `json:"country"`
	BBAN    string `json:"bban"`
}

// Validate checks if the generate request is valid. The country code shape is left to the
// registry lookup, so an unregistered code such as "nl" is reported as an unknown country.
func (r *GenerateIBANRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country,
			validation.Required,
			customValidation.Printable,
			validation.RuneLength(1, maxInputLength),
		),
		validation.Field(&r.BBAN,
			customValidation.Printable,
			validation.RuneLength(0, maxInputLength),
		),
	)
}
