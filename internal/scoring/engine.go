package scoring

import (
	"github.com/hakem-ai/compare-cli/internal/model"
)

// Providers without a stored reputation record score as a mid-table market
// participant. This is the single place the fallback is applied.
const (
	DefaultReputationScore = 0.75
	DefaultReputationTier  = model.TierStandard
)

// Engine scores quotes against their same-category group. Instances are
// stateless and safe for concurrent use.
type Engine struct {
	weights         Weights
	defaultRepScore float64
	defaultRepTier  model.Tier
}

// New builds an Engine. Zero-value reputation defaults fall back to the
// package constants; weights are taken as given, validate before use.
func New(w Weights, defaultRepScore float64, defaultRepTier model.Tier) *Engine {
	if defaultRepScore <= 0 {
		defaultRepScore = DefaultReputationScore
	}
	if defaultRepTier == "" {
		defaultRepTier = DefaultReputationTier
	}
	return &Engine{weights: w, defaultRepScore: defaultRepScore, defaultRepTier: defaultRepTier}
}

// Score computes the breakdown for one quote relative to its group. The group
// must contain the quote itself and only quotes of the same policy category.
// rep is the resolved reputation record, nil when no match was found.
func (e *Engine) Score(quote model.Quote, group []model.Quote, rep *model.ReputationRecord) model.ScoreBreakdown {
	b := model.ScoreBreakdown{
		Premium:        normalizeLower(quote.Premium(), quote.HasPremium(), premiums(group)),
		Rate:           normalizeLower(quote.RateValue(), quote.RateValue() > 0, rates(group)),
		Benefits:       normalizeHigher(float64(len(quote.KeyBenefits)), counts(group, func(q model.Quote) int { return len(q.KeyBenefits) })),
		Exclusions:     normalizeLowerAll(float64(len(quote.Exclusions)), counts(group, func(q model.Quote) int { return len(q.Exclusions) })),
		Warranties:     normalizeHigher(float64(len(quote.Warranties)), counts(group, func(q model.Quote) int { return len(q.Warranties) })),
		Extensions:     normalizeHigher(float64(len(quote.Extensions)), counts(group, func(q model.Quote) int { return len(q.Extensions) })),
		Subjectivities: normalizeLowerAll(float64(len(quote.Subjectivities)), counts(group, func(q model.Quote) int { return len(q.Subjectivities) })),
	}

	if rep != nil {
		b.Reputation = clamp01(rep.Score)
		b.ReputationTier = rep.EffectiveTier()
		b.ReputationRank = rep.Rank
		b.MatchedCompany = rep.CompanyName
	} else {
		b.Reputation = e.defaultRepScore
		b.ReputationTier = e.defaultRepTier
	}

	w := e.weights
	total := w.Premium*b.Premium +
		w.Rate*b.Rate +
		w.Benefits*b.Benefits +
		w.Exclusions*b.Exclusions +
		w.Warranties*b.Warranties +
		w.Extensions*b.Extensions +
		w.Subjectivities*b.Subjectivities +
		w.Reputation*b.Reputation
	b.Score = clamp(total*100, 0, 100)
	return b
}

// premiums returns the usable premium values in the group.
func premiums(group []model.Quote) []float64 {
	var vs []float64
	for _, q := range group {
		if q.HasPremium() {
			vs = append(vs, q.Premium())
		}
	}
	return vs
}

// rates returns the usable rate values in the group.
func rates(group []model.Quote) []float64 {
	var vs []float64
	for _, q := range group {
		if r := q.RateValue(); r > 0 {
			vs = append(vs, r)
		}
	}
	return vs
}

func counts(group []model.Quote, count func(model.Quote) int) []float64 {
	vs := make([]float64, 0, len(group))
	for _, q := range group {
		vs = append(vs, float64(count(q)))
	}
	return vs
}

// normalizeLower min-max-normalizes a lower-is-better value against the
// group's usable values. A quote missing the value scores worst case (0)
// unless nobody in the group has it, in which case the factor is neutral and
// everyone scores 1.0.
func normalizeLower(v float64, present bool, group []float64) float64 {
	if len(group) == 0 {
		return 1
	}
	if !present {
		return 0
	}
	min, max := minMax(group)
	if max == min {
		return 1
	}
	return clamp01(1 - (v-min)/(max-min))
}

// normalizeLowerAll is normalizeLower for count factors, where a missing list
// legitimately counts as zero and participates in the spread.
func normalizeLowerAll(v float64, group []float64) float64 {
	min, max := minMax(group)
	if max == min {
		return 1
	}
	return clamp01(1 - (v-min)/(max-min))
}

// normalizeHigher min-max-normalizes a higher-is-better count factor.
func normalizeHigher(v float64, group []float64) float64 {
	min, max := minMax(group)
	if max == min {
		return 1
	}
	return clamp01((v - min) / (max - min))
}

func minMax(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
