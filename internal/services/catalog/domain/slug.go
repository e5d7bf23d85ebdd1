package domain

import (
	"strings"

	"reparto/internal/core/textnorm"
)

// Slugify folds a display name and renders it as a url-safe slug
func Slugify(name string) string {
	folded := textnorm.Fold(name)
	var b strings.Builder
	b.Grow(len(folded))
	lastDash := true // swallow leading separators
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
