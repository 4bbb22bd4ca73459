package utils

import (
	"strings"
	"unicode"
)

// GenerateSlug derives the URL-safe identifier for a category name:
// lowercase, runs of anything outside [a-z0-9] and Han characters collapse
// to a single "-", leading and trailing "-" stripped. Deterministic for a
// given name.
func GenerateSlug(name string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.Is(unicode.Han, r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
