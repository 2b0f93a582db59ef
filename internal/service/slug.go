package service

import (
	"strings"
	"unicode"
)

// swedishFold maps characters common in Swedish company names onto their
// URL-safe equivalents before the generic fold.
var swedishFold = map[rune]string{
	'å': "a", 'ä': "a", 'ö': "o",
	'é': "e", 'ü': "u", '&': "och",
}

// Slugify derives the URL-safe identifier from a company name. The result
// is assigned once at creation and never changes afterwards.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if mapped, ok := swedishFold[r]; ok {
			b.WriteString(mapped)
			lastDash = false
			continue
		}
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
