// Package sanitize validates free-text expression input before it is stored
// as a note's text.
package sanitize

import (
	"fmt"
	"unicode"

	"github.com/totallysecure/mathnotes/internal/common"
)

// Validate checks text against the allowed-character policy for math
// expressions: digits, the four arithmetic operators, parentheses, the
// decimal point, and whitespace. The empty string is accepted; emptiness is
// rejected later by the note store, not here.
//
// On success the input is returned unchanged. On the first disallowed rune
// it fails with common.ErrInvalidInput; callers keep their prior value.
func Validate(text string) (string, error) {
	for _, r := range text {
		if !allowed(r) {
			return "", fmt.Errorf("%w (got %q)", common.ErrInvalidInput, r)
		}
	}
	return text, nil
}

func allowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == '*' || r == '/':
		return true
	case r == '(' || r == ')' || r == '.':
		return true
	default:
		return unicode.IsSpace(r)
	}
}
