// utils/slug.go
package utils

import (
	"strings"
	"unicode"
)

var slugReplacements = map[rune]string{
	'ç': "c", 'ğ': "g", 'ı': "i", 'ö': "o", 'ş': "s", 'ü': "u",
	'Ç': "c", 'Ğ': "g", 'İ': "i", 'Ö': "o", 'Ş': "s", 'Ü': "u",
	'I': "i",
}

// Slugify turns a Turkish display name into an ASCII URL slug, e.g.
// "Güzellik Salonu" -> "guzellik-salonu".
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.TrimSpace(name) {
		if repl, ok := slugReplacements[r]; ok {
			b.WriteString(repl)
			lastDash = false
			continue
		}
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
