package compare

import (
	"fmt"
	"sort"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// buildKeyDifferences summarizes the spreads that matter most to a reviewer:
// price gaps per category, benefit and exclusion count gaps, and each
// provider's genuinely unique clauses.
func buildKeyDifferences(groups map[model.PolicyCategory][]model.Quote, quotes []model.Quote, unique map[string]model.UniqueItemSet) model.KeyDifferences {
	kd := model.KeyDifferences{UniqueByProvider: unique}

	cats := make([]model.PolicyCategory, 0, len(groups))
	for cat := range groups {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	for _, cat := range cats {
		if spread := priceSpread(cat, groups[cat]); spread != nil {
			kd.PriceSpreads = append(kd.PriceSpreads, *spread)
		}
	}

	kd.BenefitSpread = countSpread("benefits", quotes, func(q model.Quote) int { return len(q.KeyBenefits) })
	kd.ExclusionSpread = countSpread("exclusions", quotes, func(q model.Quote) int { return len(q.Exclusions) })
	return kd
}

// priceSpread reports the cheapest-vs-most-expensive gap within one
// category's usable premiums. Nil when fewer than two premiums exist or all
// are equal.
func priceSpread(cat model.PolicyCategory, group []model.Quote) *model.PriceSpread {
	var priced []model.Quote
	for _, q := range group {
		if q.HasPremium() {
			priced = append(priced, q)
		}
	}
	if len(priced) < 2 {
		return nil
	}
	sort.SliceStable(priced, func(i, j int) bool { return priced[i].Premium() < priced[j].Premium() })

	cheapest, expensive := priced[0], priced[len(priced)-1]
	if cheapest.Premium() >= expensive.Premium() {
		return nil
	}
	diff := expensive.Premium() - cheapest.Premium()
	return &model.PriceSpread{
		Category:      cat,
		Cheapest:      cheapest.CompanyName,
		MostExpensive: expensive.CompanyName,
		Difference:    diff,
		DifferencePct: diff / expensive.Premium() * 100,
	}
}

// countSpread reports the gap between the providers with the most and fewest
// items on a list attribute. Nil when all counts are equal.
func countSpread(attribute string, quotes []model.Quote, count func(model.Quote) int) *model.CountSpread {
	if len(quotes) < 2 {
		return nil
	}
	most, least := quotes[0], quotes[0]
	for _, q := range quotes[1:] {
		if count(q) > count(most) {
			most = q
		}
		if count(q) < count(least) {
			least = q
		}
	}
	if count(most) == count(least) {
		return nil
	}
	return &model.CountSpread{
		Attribute:  attribute,
		Most:       most.CompanyName,
		MostCount:  count(most),
		Least:      least.CompanyName,
		LeastCount: count(least),
	}
}

// buildSideBySide assembles the attribute-by-provider matrix plus the overall
// winner. Columns follow input order; the winner is the highest score across
// the entire input and is a display artifact only.
func buildSideBySide(quotes []model.Quote, scores map[string]model.ScoreBreakdown) model.SideBySide {
	matrix := make(map[string][]model.MatrixCell)

	row := func(key string, cell func(q model.Quote) model.MatrixCell) {
		cells := make([]model.MatrixCell, 0, len(quotes))
		for _, q := range quotes {
			c := cell(q)
			c.Provider = q.CompanyName
			cells = append(cells, c)
		}
		matrix[key] = cells
	}

	row("premium", func(q model.Quote) model.MatrixCell {
		if !q.HasPremium() {
			return model.MatrixCell{Value: "N/A"}
		}
		p := q.Premium()
		return model.MatrixCell{Number: &p, Value: fmt.Sprintf("SAR %.2f", p)}
	})
	row("rate", func(q model.Quote) model.MatrixCell {
		if q.Rate == "" {
			return model.MatrixCell{Value: "N/A"}
		}
		return model.MatrixCell{Value: q.Rate}
	})
	row("score", func(q model.Quote) model.MatrixCell {
		b := scores[q.CompanyName]
		s := b.Score
		return model.MatrixCell{Number: &s, Value: fmt.Sprintf("%.2f", s)}
	})
	row("reputation", func(q model.Quote) model.MatrixCell {
		b := scores[q.CompanyName]
		r := b.Reputation
		return model.MatrixCell{Number: &r, Value: fmt.Sprintf("%.2f (%s)", r, b.ReputationTier)}
	})
	row("deductible", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Value: orNA(q.Deductible)}
	})
	row("coverage", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Value: orNA(q.CoverageLimit)}
	})
	row("client_names", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Value: q.ClientName}
	})
	row("benefits", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Items: q.KeyBenefits}
	})
	row("exclusions", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Items: q.Exclusions}
	})
	row("warranties", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Items: q.Warranties}
	})
	row("subjectivities", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Items: q.Subjectivities}
	})
	row("extensions", func(q model.Quote) model.MatrixCell {
		return model.MatrixCell{Items: q.Extensions}
	})
	row("benefits_count", countCell(func(q model.Quote) int { return len(q.KeyBenefits) }))
	row("exclusions_count", countCell(func(q model.Quote) int { return len(q.Exclusions) }))
	row("warranties_count", countCell(func(q model.Quote) int { return len(q.Warranties) }))

	return model.SideBySide{Matrix: matrix, Winner: winner(quotes, scores)}
}

func countCell(count func(model.Quote) int) func(model.Quote) model.MatrixCell {
	return func(q model.Quote) model.MatrixCell {
		n := float64(count(q))
		return model.MatrixCell{Number: &n, Value: fmt.Sprintf("%d", count(q))}
	}
}

// winner picks the highest-scoring provider overall, breaking ties on input
// order.
func winner(quotes []model.Quote, scores map[string]model.ScoreBreakdown) string {
	best, bestScore := "", -1.0
	for _, q := range quotes {
		if s := scores[q.CompanyName].Score; s > bestScore {
			best, bestScore = q.CompanyName, s
		}
	}
	return best
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
