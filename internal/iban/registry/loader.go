package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// defaultData is the registry shipped with the binary, in the JSON form produced from
// the SWIFT IBAN registry: a list of objects with country, country_name, bban_length
// and "*_example" fields.
//
//go:embed data/registry_data.json
var defaultData []byte

// Decode reads a JSON array of registry records from r.
func Decode(r io.Reader) ([]domain.Record, error) {
	var records []domain.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode registry data: %w", err)
	}
	return records, nil
}

// Load decodes records from r and builds a Registry from them.
func Load(r io.Reader) (*Registry, error) {
	records, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// LoadFile builds a Registry from the JSON registry file at path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// DefaultRecords returns the records of the embedded registry data.
func DefaultRecords() ([]domain.Record, error) {
	return Decode(bytes.NewReader(defaultData))
}

// Default builds a Registry from the embedded registry data.
func Default() (*Registry, error) {
	return Load(bytes.NewReader(defaultData))
}
