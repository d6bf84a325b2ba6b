package utils

import "strings"

// Accented Latin characters folded to their ASCII base before the
// character-class filter runs.
var translitMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

// GenerateSlug derives a URL-safe identifier from a title: lowercase,
// accented vowels and cedilla folded to ASCII, anything outside
// [a-z0-9\s-] dropped, whitespace runs collapsed to a single hyphen,
// repeated hyphens collapsed, leading/trailing hyphens trimmed.
func GenerateSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if folded, ok := translitMap[r]; ok {
			r = folded
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '-':
			b.WriteByte('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
