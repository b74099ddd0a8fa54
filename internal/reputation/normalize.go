// Package reputation resolves insurer names against the curated reputation
// store. Lookups tolerate the name variants that show up in extracted quotes:
// legal suffixes, abbreviations, and Arabic aliases.
package reputation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
)

// Corporate boilerplate stripped before matching. Longest alternatives first
// so "co-operative" is consumed whole instead of leaving "-operative" behind.
var stopWordRe = regexp.MustCompile(`\b(?:co-operative|incorporated|cooperative|assurance|insurance|company|limited|takaful|group|inc|llc|ltd|the|co)\b`)

// punctStripper drops everything that is not a letter, digit or space.
// Unicode letters survive, so Arabic aliases normalize cleanly.
var punctStripper = runes.Remove(runes.Predicate(func(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}))

// NormalizeName canonicalizes a company name for matching: lower-case, stop
// words and punctuation removed, whitespace collapsed.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(name))
	s = stopWordRe.ReplaceAllString(s, "")
	s = punctStripper.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// keywords returns the significant tokens of a normalized name. Tokens of one
// or two runes carry no signal and are dropped.
func keywords(name string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(NormalizeName(name)) {
		if utf8.RuneCountInString(w) > 2 {
			out[w] = struct{}{}
		}
	}
	return out
}

// charSimilarity scores two raw names on character shape alone. Equal
// normalized forms are a perfect match; containment scores 0.9; everything
// else falls through to the levenshtein ratio.
func charSimilarity(a, b string) float64 {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}
	return levenshtein.Similarity(na, nb, nil)
}

// keywordOverlap is the shared-token ratio between two names, scaled by the
// larger keyword set.
func keywordOverlap(a, b string) float64 {
	ka, kb := keywords(a), keywords(b)
	shared := 0
	for w := range ka {
		if _, ok := kb[w]; ok {
			shared++
		}
	}
	max := len(ka)
	if len(kb) > max {
		max = len(kb)
	}
	if max == 0 {
		max = 1
	}
	return float64(shared) / float64(max)
}
