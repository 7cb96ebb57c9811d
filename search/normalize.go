package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize folds free text for comparison: trimmed and lower-cased with
// Turkish casing rules, so "İstanbul" and "istanbul" compare equal while
// "I" folds to "ı" rather than "i". Empty input yields "".
//
// Every text comparison in this package must normalize both sides with
// this function.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Lower(language.Turkish).String(s)
}

// containsFold reports whether haystack contains needle after normalizing
// both sides.
func containsFold(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
