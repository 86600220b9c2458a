package domain

import (
	"regexp"
	"strings"
)

// SlugFallback is used when a name slugifies to nothing. Corpus
// filenames must never be empty.
const SlugFallback = "section"

var (
	invalidSlugChars = regexp.MustCompile(`[^\w-]+`)
	hyphenRuns       = regexp.MustCompile(`-{2,}`)
)

// Slugify converts arbitrary human text into a lowercase token of word
// characters and single hyphens, safe for use in filenames. Runs of
// invalid characters collapse into one hyphen and leading/trailing
// hyphens are trimmed. All-invalid input maps to SlugFallback.
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "-")
	value = invalidSlugChars.ReplaceAllString(value, "-")
	value = hyphenRuns.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return SlugFallback
	}
	return value
}
