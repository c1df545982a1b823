package domain

// IBAN is a structurally valid International Bank Account Number split into its parts.
type IBAN struct {
	// Country is the ISO 3166 alpha-2 prefix.
	Country string

	// CheckDigits are the two mod-97 digits following the country code.
	CheckDigits string

	// BBAN is the country specific account number.
	BBAN string
}

// Electronic returns the IBAN without any separators.
func (i IBAN) Electronic() string {
	return i.Country + i.CheckDigits + i.BBAN
}

// String returns the IBAN in print format (blocks of four).
func (i IBAN) String() string {
	return Group(i.Electronic())
}

// ValidationResult is the outcome of validating one input of a batch.
type ValidationResult struct {
	// Input is the raw value as supplied by the caller.
	Input string

	// IBAN is set when the input is valid.
	IBAN *IBAN

	// Err is set when the input is invalid.
	Err error
}

// Valid reports whether the input validated successfully.
func (r ValidationResult) Valid() bool {
	return r.Err == nil && r.IBAN != nil
}
