// Package ranking orders scored quotes within their policy category and
// attaches recommendation badges.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hakem-ai/compare-cli/internal/model"
	"github.com/hakem-ai/compare-cli/internal/policy"
)

// Badge cutoffs on the 0-100 score scale.
const (
	DefaultRecommendedCutoff = 85.0
	DefaultGoodOptionCutoff  = 80.0
)

// ScoredQuote pairs a quote with its computed score breakdown.
type ScoredQuote struct {
	Quote     model.Quote
	Breakdown model.ScoreBreakdown
}

// Assembler turns scored quotes into ranked, badged category lists.
type Assembler struct {
	recommendedCutoff float64
	goodOptionCutoff  float64
}

// New builds an Assembler. Non-positive cutoffs fall back to the defaults.
func New(recommendedCutoff, goodOptionCutoff float64) *Assembler {
	if recommendedCutoff <= 0 {
		recommendedCutoff = DefaultRecommendedCutoff
	}
	if goodOptionCutoff <= 0 {
		goodOptionCutoff = DefaultGoodOptionCutoff
	}
	return &Assembler{recommendedCutoff: recommendedCutoff, goodOptionCutoff: goodOptionCutoff}
}

// Group buckets quotes by their classified policy category. Quotes of
// different categories are never ranked against each other.
func Group(quotes []model.Quote) map[model.PolicyCategory][]model.Quote {
	out := make(map[model.PolicyCategory][]model.Quote)
	for _, q := range quotes {
		cat := policy.Classify(q.PolicyType)
		out[cat] = append(out[cat], q)
	}
	return out
}

// Assemble sorts one category's scored quotes and assigns ranks and badges.
// Ordering is fully deterministic: score descending, then premium ascending
// with absent premiums last, then company name.
func (a *Assembler) Assemble(category model.PolicyCategory, scored []ScoredQuote) []model.RankedQuote {
	if len(scored) == 0 {
		return nil
	}

	sorted := make([]ScoredQuote, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Breakdown.Score != sorted[j].Breakdown.Score {
			return sorted[i].Breakdown.Score > sorted[j].Breakdown.Score
		}
		pi, pj := sorted[i].Quote.SortPremium(), sorted[j].Quote.SortPremium()
		if pi != pj {
			return pi < pj
		}
		return strings.ToLower(sorted[i].Quote.CompanyName) < strings.ToLower(sorted[j].Quote.CompanyName)
	})

	minPremium, hasMin := groupMinPremium(sorted)

	out := make([]model.RankedQuote, 0, len(sorted))
	for i, sq := range sorted {
		rank := i + 1
		out = append(out, model.RankedQuote{
			Rank:      rank,
			Badge:     a.badge(rank, sq, minPremium, hasMin),
			Category:  category,
			Quote:     sq.Quote,
			Score:     sq.Breakdown.Score,
			Breakdown: sq.Breakdown,
		})
	}
	return out
}

// MixedLines returns a warning when the input spans more than one policy
// category, nil otherwise.
func MixedLines(groups map[model.PolicyCategory][]model.Quote) *model.MixedLinesWarning {
	if len(groups) <= 1 {
		return nil
	}
	cats := make([]model.PolicyCategory, 0, len(groups))
	for cat := range groups {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return &model.MixedLinesWarning{
		Categories: cats,
		Message: fmt.Sprintf("quotes span %d policy lines (%s); each line is ranked independently and scores are not comparable across lines",
			len(cats), strings.Join(names, ", ")),
	}
}

func (a *Assembler) badge(rank int, sq ScoredQuote, minPremium float64, hasMin bool) model.Badge {
	switch {
	case rank == 1 && sq.Breakdown.Score >= a.recommendedCutoff:
		return model.BadgeRecommended
	case hasMin && sq.Quote.HasPremium() && sq.Quote.Premium() == minPremium:
		return model.BadgeBestValue
	case sq.Breakdown.Score >= a.goodOptionCutoff:
		return model.BadgeGoodOption
	default:
		return model.BadgeConsider
	}
}

// groupMinPremium finds the lowest usable premium in the sorted group.
func groupMinPremium(scored []ScoredQuote) (float64, bool) {
	min, found := 0.0, false
	for _, sq := range scored {
		if !sq.Quote.HasPremium() {
			continue
		}
		if !found || sq.Quote.Premium() < min {
			min = sq.Quote.Premium()
			found = true
		}
	}
	return min, found
}
