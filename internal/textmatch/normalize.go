// Package textmatch decides whether two policy clauses say the same thing.
// It backs the deduplication pass: warranties, subjectivities, benefits and
// exclusions are compared after aggressive normalization so that numbering,
// measurements and boilerplate prefixes do not mask semantic duplicates.
package textmatch

import (
	"regexp"
	"strings"
)

// Measurement and duration figures collapse to placeholders so "within 30
// days" and "within 45 days" normalize to the same clause.
var unitPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\d+\s*(?:cm|centimeters?)`), "[NUMBER] cm"},
	{regexp.MustCompile(`\d+\s*(?:inch(?:es)?)`), "[NUMBER] inch"},
	{regexp.MustCompile(`\d+\s*(?:meters?|m\b)`), "[NUMBER] meter"},
	{regexp.MustCompile(`\d+\s*(?:days?|hours?|weeks?|months?)`), "[NUMBER] time"},
	{regexp.MustCompile(`\d+\s*%`), "[NUMBER] percent"},
}

var (
	bracketRe = regexp.MustCompile(`[()\[\]{}]`)
	punctRe   = regexp.MustCompile(`[,.;:]`)
	spaceRe   = regexp.MustCompile(`\s+`)

	// Item-code and boilerplate prefixes: "(W16)", "Warranty:", "Warranted".
	codePrefixRe      = regexp.MustCompile(`^\s*\(?w\d+\)?\s*`)
	warrantyPrefixRe  = regexp.MustCompile(`^\s*warranty\s*:?\s*`)
	warrantedPrefixRe = regexp.MustCompile(`^\s*warranted\s+`)
)

// Normalize canonicalizes clause text for comparison: lower-case, numeric
// figures to placeholders, punctuation and item codes stripped, whitespace
// collapsed.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	for _, p := range unitPatterns {
		text = p.re.ReplaceAllString(text, p.repl)
	}
	text = bracketRe.ReplaceAllString(text, "")
	text = punctRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	text = codePrefixRe.ReplaceAllString(text, "")
	text = warrantyPrefixRe.ReplaceAllString(text, "")
	text = warrantedPrefixRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
