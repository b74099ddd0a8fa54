package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakem-ai/compare-cli/internal/model"
)

func f(v float64) *float64 { return &v }

func sq(name string, premium *float64, score float64) ScoredQuote {
	return ScoredQuote{
		Quote:     model.Quote{CompanyName: name, PremiumAmount: premium},
		Breakdown: model.ScoreBreakdown{Score: score},
	}
}

func TestGroupByCategory(t *testing.T) {
	quotes := []model.Quote{
		{CompanyName: "A", PolicyType: "Property All Risk"},
		{CompanyName: "B", PolicyType: "Public Liability"},
		{CompanyName: "C", PolicyType: "Fire & Allied Perils"},
	}
	groups := Group(quotes)

	require.Len(t, groups, 2)
	assert.Len(t, groups[model.CategoryProperty], 2)
	assert.Len(t, groups[model.CategoryLiability], 1)
}

func TestAssembleOrdering(t *testing.T) {
	scored := []ScoredQuote{
		sq("Beta", f(12000), 66),
		sq("Alpha", f(10000), 97),
		sq("Gamma", f(11000), 80),
	}
	ranked := New(0, 0).Assemble(model.CategoryProperty, scored)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Alpha", ranked[0].Quote.CompanyName)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Gamma", ranked[1].Quote.CompanyName)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "Beta", ranked[2].Quote.CompanyName)
	assert.Equal(t, 3, ranked[2].Rank)
}

// Equal scores break ties on premium, then company name, so reordering the
// input never changes the output.
func TestAssembleDeterministicTieBreaks(t *testing.T) {
	a := sq("Zed Insurance", f(9000), 82)
	b := sq("Acme Insurance", f(9000), 82)
	c := sq("Mid Insurance", nil, 82)

	first := New(0, 0).Assemble(model.CategoryProperty, []ScoredQuote{a, b, c})
	second := New(0, 0).Assemble(model.CategoryProperty, []ScoredQuote{c, b, a})

	require.Len(t, first, 3)
	assert.Equal(t, "Acme Insurance", first[0].Quote.CompanyName)
	assert.Equal(t, "Zed Insurance", first[1].Quote.CompanyName)
	// Absent premium sorts last within the tie.
	assert.Equal(t, "Mid Insurance", first[2].Quote.CompanyName)

	for i := range first {
		assert.Equal(t, first[i].Quote.CompanyName, second[i].Quote.CompanyName)
		assert.Equal(t, first[i].Badge, second[i].Badge)
	}
}

func TestBadges(t *testing.T) {
	scored := []ScoredQuote{
		sq("Top", f(11000), 92),
		sq("Cheap", f(8000), 70),
		sq("Good", f(12000), 83),
		sq("Weak", f(13000), 55),
	}
	ranked := New(0, 0).Assemble(model.CategoryProperty, scored)

	byName := map[string]model.Badge{}
	for _, r := range ranked {
		byName[r.Quote.CompanyName] = r.Badge
	}
	assert.Equal(t, model.BadgeRecommended, byName["Top"])
	assert.Equal(t, model.BadgeBestValue, byName["Cheap"])
	assert.Equal(t, model.BadgeGoodOption, byName["Good"])
	assert.Equal(t, model.BadgeConsider, byName["Weak"])
}

// Rank 1 below the recommended cutoff still earns BestValue when it is the
// cheapest quote.
func TestBadgeRankOneBelowCutoff(t *testing.T) {
	scored := []ScoredQuote{
		sq("Leader", f(8000), 78),
		sq("Trailer", f(9000), 60),
	}
	ranked := New(0, 0).Assemble(model.CategoryProperty, scored)

	assert.Equal(t, model.BadgeBestValue, ranked[0].Badge)
	assert.Equal(t, model.BadgeConsider, ranked[1].Badge)
}

func TestMixedLines(t *testing.T) {
	groups := Group([]model.Quote{
		{CompanyName: "A", PolicyType: "Property All Risk"},
		{CompanyName: "B", PolicyType: "Public Liability"},
	})
	warn := MixedLines(groups)

	require.NotNil(t, warn)
	assert.Equal(t, []model.PolicyCategory{model.CategoryLiability, model.CategoryProperty}, warn.Categories)
	assert.Contains(t, warn.Message, "ranked independently")
}

func TestMixedLinesSingleCategory(t *testing.T) {
	groups := Group([]model.Quote{
		{CompanyName: "A", PolicyType: "Motor Fleet"},
		{CompanyName: "B", PolicyType: "Motor"},
	})
	assert.Nil(t, MixedLines(groups))
}
