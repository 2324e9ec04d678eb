package utils

import "strings"

// Slugify normalizes a human readable name into a URL-safe identifier:
// lower case, whitespace collapsed to a single dash, anything that is not a
// letter, digit or dash dropped. Persian letters are kept as-is since they are
// valid in URL paths once escaped.
func Slugify(s string) string {
	return slugifyWith(s, '-')
}

// SlugifyKey normalizes an option key: trimmed, lower case, spaces replaced
// with underscores.
func SlugifyKey(s string) string {
	return slugifyWith(s, '_')
}

func slugifyWith(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastSep := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !lastSep && b.Len() > 0 {
				b.WriteRune(sep)
				lastSep = true
			}
		case isSlugRune(r):
			b.WriteRune(r)
			lastSep = false
		}
	}
	return strings.TrimRight(b.String(), string(sep))
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r > 127: // non-ASCII letters (e.g. Persian) survive slugification
		return true
	}
	return false
}
