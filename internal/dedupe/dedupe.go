// Package dedupe identifies policy clauses genuinely unique to one provider.
package dedupe

import (
	"go.uber.org/zap"

	"github.com/hakem-ai/compare-cli/internal/model"
	"github.com/hakem-ai/compare-cli/internal/textmatch"
)

// Engine runs the semantic uniqueness pass. Thresholds are per clause
// category; subjectivities get the softer cutoff.
type Engine struct {
	threshold     float64
	subjThreshold float64
}

// New builds an Engine. Non-positive thresholds fall back to the defaults.
func New(threshold, subjThreshold float64) *Engine {
	if threshold <= 0 {
		threshold = textmatch.DefaultThreshold
	}
	if subjThreshold <= 0 {
		subjThreshold = textmatch.SubjectivitiesThreshold
	}
	return &Engine{threshold: threshold, subjThreshold: subjThreshold}
}

// UniqueItems returns the provider items with no semantic match among the
// other providers' items. With nothing to compare against, every item is
// unique and the input comes back unchanged.
func UniqueItems(providerItems, allOtherItems []string, threshold float64) []string {
	if len(providerItems) == 0 {
		return nil
	}
	if len(allOtherItems) == 0 {
		return providerItems
	}
	var unique []string
	for _, item := range providerItems {
		matched := false
		for _, other := range allOtherItems {
			if textmatch.AreSimilar(item, other, threshold) {
				matched = true
				break
			}
		}
		if !matched {
			unique = append(unique, item)
		}
	}
	return unique
}

// UniqueByProvider computes each provider's unique warranties,
// subjectivities, benefits and exclusions against every other quote in the
// input. The comparison pool deliberately spans all quotes regardless of
// policy category: a clause is only "unique" if no other provider in the
// whole comparison states it.
func (e *Engine) UniqueByProvider(quotes []model.Quote) map[string]model.UniqueItemSet {
	if len(quotes) == 0 {
		return nil
	}
	out := make(map[string]model.UniqueItemSet, len(quotes))
	for i, q := range quotes {
		var otherWarranties, otherSubjectivities, otherBenefits, otherExclusions []string
		for j, other := range quotes {
			if j == i {
				continue
			}
			otherWarranties = append(otherWarranties, other.Warranties...)
			otherSubjectivities = append(otherSubjectivities, other.Subjectivities...)
			otherBenefits = append(otherBenefits, other.KeyBenefits...)
			otherExclusions = append(otherExclusions, other.Exclusions...)
		}
		set := model.UniqueItemSet{
			Warranties:     UniqueItems(q.Warranties, otherWarranties, e.threshold),
			Subjectivities: UniqueItems(q.Subjectivities, otherSubjectivities, e.subjThreshold),
			Benefits:       UniqueItems(q.KeyBenefits, otherBenefits, e.threshold),
			Exclusions:     UniqueItems(q.Exclusions, otherExclusions, e.threshold),
		}
		out[q.CompanyName] = set
		zap.L().Debug("dedupe: provider uniqueness computed",
			zap.String("company", q.CompanyName),
			zap.Int("unique_warranties", len(set.Warranties)),
			zap.Int("unique_subjectivities", len(set.Subjectivities)),
			zap.Int("unique_benefits", len(set.Benefits)),
			zap.Int("unique_exclusions", len(set.Exclusions)))
	}
	return out
}
