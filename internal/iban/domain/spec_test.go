package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpec(t *testing.T) {
	spec, err := NewSpec("TR", "Turkey", 22, map[string]string{
		ExampleIBAN: "TR330006100519786457841326",
		ExampleBBAN: "0006100519786457841326",
	})
	require.NoError(t, err)

	assert.Equal(t, 26, spec.FullLength())
	assert.Equal(t, []string{"bban", "iban"}, spec.ExampleKinds())

	_, ok := spec.Example(ExampleIBANFormat)
	assert.False(t, ok)

	// Examples returns a copy.
	examples := spec.Examples()
	examples[ExampleIBAN] = "changed"
	example, _ := spec.Example(ExampleIBAN)
	assert.Equal(t, "TR330006100519786457841326", example)

	rec := spec.Record()
	assert.Equal(t, "TR", rec.Country)
	assert.Equal(t, "Turkey", rec.CountryName)
	assert.Equal(t, 22, rec.BBANLength)
}

func TestNewSpec_Invalid(t *testing.T) {
	_, err := NewSpec("TR", "Tur", 22, nil)
	assert.ErrorIs(t, err, ErrMalformedSpec)

	_, err = NewSpec("TR", "Turkey", 40, nil)
	assert.ErrorIs(t, err, ErrMalformedSpec)
}
