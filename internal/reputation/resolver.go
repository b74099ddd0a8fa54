package reputation

import (
	"context"
	"strings"
	"unicode"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// AcceptThreshold is the minimum combined similarity for a fuzzy match.
const AcceptThreshold = 0.6

// Fuzzy score composition and abbreviation floors.
const (
	charWeight           = 0.7
	keywordWeight        = 0.3
	substringAbbrevFloor = 0.85
	initialsAbbrevFloor  = 0.90
)

// Resolver matches extracted company names to stored reputation records.
type Resolver struct {
	store     Store
	threshold float64
}

// NewResolver builds a Resolver over the given store. A non-positive
// threshold falls back to AcceptThreshold.
func NewResolver(store Store, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = AcceptThreshold
	}
	return &Resolver{store: store, threshold: threshold}
}

// Resolve finds the reputation record for a company name. It returns nil
// (with no error) when nothing matches: a missing record is an expected
// outcome, not a failure.
//
// Matching runs in passes: exact canonical name, exact alias, then fuzzy
// scoring over every record with abbreviation floors for inputs like "GIG".
func (r *Resolver) Resolve(ctx context.Context, companyName string) (*model.ReputationRecord, error) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil, nil
	}

	records, err := r.store.List(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "reputation: list records")
	}

	lower := strings.ToLower(name)
	for i := range records {
		if strings.ToLower(strings.TrimSpace(records[i].CompanyName)) == lower {
			return &records[i], nil
		}
	}
	for i := range records {
		for _, alias := range records[i].Aliases {
			if strings.ToLower(strings.TrimSpace(alias)) == lower {
				zap.L().Debug("reputation: alias match",
					zap.String("input", name),
					zap.String("company", records[i].CompanyName),
					zap.String("alias", alias))
				return &records[i], nil
			}
		}
	}

	var best *model.ReputationRecord
	bestScore := 0.0
	for i := range records {
		score := r.fuzzyScore(name, &records[i])
		if score > bestScore {
			bestScore = score
			best = &records[i]
		}
	}

	if best != nil && bestScore >= r.threshold {
		zap.L().Debug("reputation: fuzzy match",
			zap.String("input", name),
			zap.String("company", best.CompanyName),
			zap.Float64("score", bestScore))
		return best, nil
	}

	zap.L().Debug("reputation: no match",
		zap.String("input", name),
		zap.Float64("best_score", bestScore))
	return nil, nil
}

// fuzzyScore combines character similarity with keyword overlap, taking the
// best across the canonical name and every alias, then applies abbreviation
// floors.
func (r *Resolver) fuzzyScore(input string, rec *model.ReputationRecord) float64 {
	sim := charSimilarity(input, rec.CompanyName)
	for _, alias := range rec.Aliases {
		if s := charSimilarity(input, alias); s > sim {
			sim = s
		}
	}
	overlap := keywordOverlap(input, rec.CompanyName)
	combined := sim*charWeight + overlap*keywordWeight

	if isAbbreviation(input) {
		upper := strings.ToUpper(input)
		candUpper := strings.ToUpper(rec.CompanyName)
		if strings.Contains(candUpper, upper) || strings.HasPrefix(candUpper, upper) {
			combined = maxf(combined, substringAbbrevFloor)
		}
		for _, alias := range rec.Aliases {
			if strings.Contains(strings.ToUpper(alias), upper) {
				combined = maxf(combined, substringAbbrevFloor)
			}
		}
		if upper == initials(rec.CompanyName) {
			combined = maxf(combined, initialsAbbrevFloor)
		}
	}
	return combined
}

// isAbbreviation reports whether the input looks like an initialism: at most
// five characters, all letters upper-case.
func isAbbreviation(s string) bool {
	if len(s) > 5 || s == "" {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// initials builds the upper-case first letters of a company name's words.
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)[0]
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
