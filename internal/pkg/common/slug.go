package common

import "strings"

// Slugify maps free text to a URL-safe identifier: lowercase, trimmed,
// characters outside [a-z0-9 -] dropped, whitespace and hyphen runs collapsed
// to single hyphens, leading and trailing hyphens trimmed. Empty input yields
// an empty string; callers substitute a default.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	slug := strings.Join(fields, "-")

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
