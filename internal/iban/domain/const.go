// Package domain defines the IBAN domain model: per-country specs, the IBAN value object,
// display formatting, and the error taxonomy shared by validation and generation.
package domain

// Structural constants of an IBAN and of registry records.
const (
	// CountryCodeLength is the length of the ISO 3166 alpha-2 prefix.
	CountryCodeLength = 2

	// CheckDigitsLength is the length of the mod-97 check digits following the country code.
	CheckDigitsLength = 2

	// HeaderLength is country code plus check digits; everything after it is the BBAN.
	HeaderLength = CountryCodeLength + CheckDigitsLength

	// MinBBANLength and MaxBBANLength bound the BBAN length a registry record may declare.
	MinBBANLength = 10
	MaxBBANLength = 30

	// MinCountryNameLength guards against truncated registry rows.
	MinCountryNameLength = 4

	// GroupSize is the block size of the print format.
	GroupSize = 4

	// ExampleSuffix marks registry fields that carry documentation examples.
	ExampleSuffix = "_example"
)

// Example kinds found in the registry data.
const (
	ExampleIBAN       = "iban"
	ExampleIBANFormat = "iban_format"
	ExampleBBAN       = "bban"
)
