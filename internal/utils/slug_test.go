package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "accented characters",
			title:    "Café Élégant!!",
			expected: "cafe-elegant",
		},
		{
			name:     "mixed case and punctuation",
			title:    "Why We Migrated: A Post-Mortem (2024)",
			expected: "why-we-migrated-a-post-mortem-2024",
		},
		{
			name:     "whitespace runs",
			title:    "spaced   \t out \n title",
			expected: "spaced-out-title",
		},
		{
			name:     "leading and trailing junk",
			title:    "  --Hello--  ",
			expected: "hello",
		},
		{
			name:     "cedilla and more vowels",
			title:    "Façade à Niterói",
			expected: "facade-a-niteroi",
		},
		{
			name:     "only symbols",
			title:    "!!! ???",
			expected: "",
		},
		{
			name:     "numbers survive",
			title:    "Top 10 Tips",
			expected: "top-10-tips",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugShape(t *testing.T) {
	// Whatever goes in, the output is lowercase [a-z0-9-]+ (or empty) with
	// no leading, trailing or doubled hyphens.
	pattern := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	titles := []string{
		"Plain",
		"ÀÁÂÃÄÅ ÈÉÊË ÌÍÎÏ ÒÓÔÕÖ ÙÚÛÜ Ç",
		"--- a --- b ---",
		"tabs\tand\nnewlines",
		"unicode snowman ☃ inside",
		"ends with punctuation!",
	}
	for _, title := range titles {
		slug := GenerateSlug(title)
		if slug == "" {
			continue
		}
		assert.True(t, pattern.MatchString(slug), "bad slug %q for title %q", slug, title)
	}
}
