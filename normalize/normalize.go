// Package normalize canonicalizes text read from the translator page so
// that invisible formatting differences do not cause false mismatches.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean returns s in Unicode NFC form with leading and trailing whitespace
// removed. The byte order mark counts as whitespace.
func Clean(s string) string {
	return strings.TrimFunc(norm.NFC.String(s), isSpace)
}

// CleanPtr is Clean for text that may be absent. A nil pointer yields "".
func CleanPtr(s *string) string {
	if s == nil {
		return ""
	}
	return Clean(*s)
}

// Equal reports whether a and b are identical after cleaning.
func Equal(a, b string) bool {
	return Clean(a) == Clean(b)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
