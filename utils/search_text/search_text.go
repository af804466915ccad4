// Package search_text normalizes search input and cleans highlighted
// snippets returned by the search backend.
package search_text

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery applies NFKC and trims surrounding whitespace. Internal runs
// of whitespace collapse to a single space.
func NormalizeQuery(q string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(q)), " ")
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// HighlightSanitizer strips every tag from highlighted text except the
// emphasis tags the search backend uses to mark matches.
type HighlightSanitizer struct {
	policy *bluemonday.Policy
}

func NewHighlightSanitizer() *HighlightSanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "mark")

	return &HighlightSanitizer{policy: p}
}

func (s *HighlightSanitizer) Sanitize(fragment string) string {
	return strings.TrimSpace(s.policy.Sanitize(fragment))
}

// PlainText strips all markup and returns unescaped text.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(s)))
}
