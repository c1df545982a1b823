package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/ibancheck/internal/validation"
)

// Record is one raw row of registry data, before it becomes a Spec.
//
// In JSON form the examples are flattened into fields named "<kind>_example",
// e.g. "iban_example" or "iban_format_example"; unknown fields are ignored.
type Record struct {
	Country     string            `json:"country"`
	CountryName string            `json:"country_name"`
	BBANLength  int               `json:"bban_length"`
	Examples    map[string]string `json:"-"`
}

// Validate checks the record: a two-letter upper-case country, a name of at least four
// characters and a BBAN length within the supported range.
func (r *Record) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Country,
			validation.Required,
			customValidation.CountryCode,
		),
		validation.Field(&r.CountryName,
			validation.Required,
			validation.RuneLength(MinCountryNameLength, 0),
		),
		validation.Field(&r.BBANLength,
			validation.Required,
			validation.Min(MinBBANLength),
			validation.Max(MaxBBANLength),
		),
	)
}

// UnmarshalJSON decodes a registry row, collecting every "*_example" field into Examples.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var rec Record
	for key, raw := range fields {
		var err error
		switch {
		case key == "country":
			err = json.Unmarshal(raw, &rec.Country)
		case key == "country_name":
			err = json.Unmarshal(raw, &rec.CountryName)
		case key == "bban_length":
			err = json.Unmarshal(raw, &rec.BBANLength)
		case strings.HasSuffix(key, ExampleSuffix):
			var example string
			err = json.Unmarshal(raw, &example)
			if err == nil {
				if rec.Examples == nil {
					rec.Examples = make(map[string]string)
				}
				rec.Examples[strings.TrimSuffix(key, ExampleSuffix)] = example
			}
		}
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}

	*r = rec
	return nil
}

// MarshalJSON encodes the record in the flattened registry form read by UnmarshalJSON.
func (r Record) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(r.Examples)+3)
	fields["country"] = r.Country
	fields["country_name"] = r.CountryName
	fields["bban_length"] = r.BBANLength
	for kind, example := range r.Examples {
		fields[kind+ExampleSuffix] = example
	}
	return json.Marshal(fields)
}

// Spec returns the record as an immutable Spec, or a MalformedSpecError.
func (r Record) Spec() (Spec, error) {
	if err := r.Validate(); err != nil {
		return Spec{}, &MalformedSpecError{Record: r, Err: err}
	}
	return Spec{
		country:    r.Country,
		name:       r.CountryName,
		bbanLength: r.BBANLength,
		examples:   maps.Clone(r.Examples),
	}, nil
}
