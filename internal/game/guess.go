package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining diacritical marks, so
// "yésterday" and "yesterday" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeGuess lowercases, strips diacritics, and trims surrounding
// whitespace. Guess evaluation compares normalized forms for equality.
func NormalizeGuess(input string) string {
	stripped, _, err := transform.String(stripMarks, input)
	if err != nil {
		stripped = input
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

// guessMatches reports whether input matches want after normalization.
func guessMatches(input, want string) bool {
	return NormalizeGuess(input) == NormalizeGuess(want)
}
