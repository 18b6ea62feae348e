package detector

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace runs into single spaces and trims the
// result, so that multi-line messages and stray spacing do not inflate
// character counts.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}
