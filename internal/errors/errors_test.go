package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countryError struct {
	Country string
}

func (e *countryError) Error() string { return "bad country " + e.Country }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.True(t, errors.Is(wrapped, baseErr))
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})

	t.Run("wrap sentinel keeps sentinel", func(t *testing.T) {
		wrapped := Wrap(ErrInvalidInput, "incorrect checksum")
		assert.True(t, Is(wrapped, ErrInvalidInput))
		assert.False(t, Is(wrapped, ErrNotFound))
	})
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNotFound, "country %q", "XX")
	require.Error(t, wrapped)
	assert.Equal(t, `country "XX": not found`, wrapped.Error())
	assert.True(t, Is(wrapped, ErrNotFound))

	assert.NoError(t, Wrapf(nil, "country %q", "XX"))
}

func TestAs(t *testing.T) {
	err := Wrap(&countryError{Country: "XX"}, "lookup")

	var target *countryError
	require.True(t, As(err, &target))
	assert.Equal(t, "XX", target.Country)

	var other *countryError
	assert.False(t, As(errors.New("plain"), &other))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join())
	assert.NoError(t, Join(nil, nil))

	joined := Join(ErrNotFound, ErrConflict)
	assert.True(t, Is(joined, ErrNotFound))
	assert.True(t, Is(joined, ErrConflict))
	assert.False(t, Is(joined, ErrInvalidInput))
}
