package domain

import (
	"strings"
	"unicode"
)

// Normalize removes every whitespace character (leading, trailing and interior).
// Case and all other characters are preserved.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Group renders s in print format: blocks of four characters separated by a single space.
// Whitespace already in s is dropped first, so grouping a grouped value returns it unchanged.
// The last block may be shorter and there is never a trailing space.
func Group(s string) string {
	s = Normalize(s)
	runes := []rune(s)
	if len(runes) <= GroupSize {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(runes)/GroupSize)
	for i, r := range runes {
		if i > 0 && i%GroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
