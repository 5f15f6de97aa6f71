package freq

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text and removes every rune that is not an ASCII
// lowercase letter, an ASCII digit, or a space.
//
// Line breaks and tabs are removed as well, not converted to spaces, so
// "end\nstart" becomes "endstart". Accented letters are lowercased first
// and then dropped, which means "Café" becomes "caf".
func Normalize(text string) string {
	// cases.Caser keeps internal state, so one is created per call.
	lower := cases.Lower(language.Und).String(text)
	return strings.Map(keepRune, lower)
}

// keepRune returns r when it belongs to the token alphabet and -1 otherwise.
func keepRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r
	case r >= '0' && r <= '9':
		return r
	case r == ' ':
		return r
	default:
		return -1
	}
}

// Tokenize normalizes text and splits it into tokens.
// Empty tokens are never produced. An empty or punctuation-only input
// returns an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
