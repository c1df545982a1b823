package service

import (
	"math/big"
	"strings"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

// segment is a piece of the string being encoded together with its position in the IBAN,
// so invalid characters are reported where the caller typed them.
type segment struct {
	value  string
	offset int
}

// walkDigits feeds the ISO 7064 decimal digits of each segment, in order, to emit.
// Digits pass through; A..Z become the two digits 10..35. Anything else is rejected.
func walkDigits(emit func(d int), segments ...segment) error {
	for _, seg := range segments {
		pos := seg.offset
		for _, r := range seg.value {
			switch {
			case r >= '0' && r <= '9':
				emit(int(r - '0'))
			case r >= 'A' && r <= 'Z':
				v := int(r-'A') + 10
				emit(v / 10)
				emit(v % 10)
			default:
				return &domain.InvalidCharacterError{Char: r, Position: pos}
			}
			pos++
		}
	}
	return nil
}

// Encode returns the decimal string representation of s (e.g. "1A2" becomes "1102").
func Encode(s string) (string, error) {
	var b strings.Builder
	b.Grow(2 * len(s))

	err := walkDigits(func(d int) {
		b.WriteByte(byte('0' + d))
	}, segment{value: s})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// EncodeInt returns the numeric encoding of s as an arbitrary precision integer.
func EncodeInt(s string) (*big.Int, error) {
	digits, err := Encode(s)
	if err != nil {
		return nil, err
	}
	if digits == "" {
		return new(big.Int), nil
	}

	n, _ := new(big.Int).SetString(digits, 10) // digits only holds 0-9
	return n, nil
}
