package post

import (
	"strings"
	"unicode"
)

// NormalizeSlug converts arbitrary title text into a URL- and filesystem-safe
// token: lowercase ASCII letters and digits separated by single hyphens, with
// no leading or trailing hyphen. Any input yields a valid (possibly empty)
// token, and normalizing an already-normal slug is a no-op.
func NormalizeSlug(text string) string {
	text = strings.ToLower(text)

	var builder strings.Builder
	builder.Grow(len(text))

	lastDash := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteByte('-')
				lastDash = true
			}
		default:
			// skip other characters
		}
	}

	return strings.Trim(builder.String(), "-")
}
