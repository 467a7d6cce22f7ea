package strings

import (
	"strings"
	"unicode"
)

// CollapseSpace trims the string and collapses internal whitespace runs to a
// single space.
//
// Example:
//
//	CollapseSpace("  A   Kumar ")
//	// Returns: "A Kumar"
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FoldValue canonicalizes a field value for comparison: lowercase, strip
// punctuation, collapse whitespace. Values from different issuing
// authorities differ in casing and separators, so raw strings are never
// compared directly.
//
// Example:
//
//	FoldValue("A. Kumar")
//	// Returns: "a kumar"
func FoldValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// Punctuation separates tokens rather than vanishing, so
			// "Kumar,A" folds to "kumar a" not "kumara".
			b.WriteRune(' ')
		}
	}
	return CollapseSpace(b.String())
}

// DigitsOnly strips everything but ASCII digits. Used for numeric
// identifiers that arrive with separators (e.g. "1234 5678 9012").
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
