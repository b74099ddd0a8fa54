package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakem-ai/compare-cli/internal/model"
)

func f(v float64) *float64 { return &v }

func TestDefaultWeightsValidate(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	assert.InDelta(t, 0.30, w.Reputation, 1e-9)
}

func TestWeightsValidateRejects(t *testing.T) {
	w := DefaultWeights()
	w.Premium = -0.1
	assert.Error(t, w.Validate())

	w = DefaultWeights()
	w.Rate = 0.5
	assert.Error(t, w.Validate())
}

// Two property quotes differing only in premium and reputation. Premiums
// 10,000 vs 12,000 with reputations 0.9 vs 0.7 land on 97 vs 66.
func TestScoreTwoQuoteScenario(t *testing.T) {
	a := model.Quote{CompanyName: "Alpha", PremiumAmount: f(10000)}
	b := model.Quote{CompanyName: "Beta", PremiumAmount: f(12000)}
	group := []model.Quote{a, b}

	e := New(DefaultWeights(), 0, "")
	repA := &model.ReputationRecord{CompanyName: "Alpha", Score: 0.9}
	repB := &model.ReputationRecord{CompanyName: "Beta", Score: 0.7}

	ba := e.Score(a, group, repA)
	bb := e.Score(b, group, repB)

	assert.InDelta(t, 97.0, ba.Score, 1e-9)
	assert.InDelta(t, 66.0, bb.Score, 1e-9)

	assert.InDelta(t, 1.0, ba.Premium, 1e-9)
	assert.InDelta(t, 0.0, bb.Premium, 1e-9)
	// Nobody quotes a rate, so the factor is neutral for both.
	assert.InDelta(t, 1.0, ba.Rate, 1e-9)
	assert.InDelta(t, 1.0, bb.Rate, 1e-9)
}

func TestScoreRangeAndClamps(t *testing.T) {
	quotes := []model.Quote{
		{CompanyName: "A", PremiumAmount: f(5000), Rate: "1.5‰", KeyBenefits: []string{"x", "y"}, Exclusions: []string{"e1", "e2", "e3"}},
		{CompanyName: "B", PremiumAmount: f(9000), Rate: "2.1‰", Warranties: []string{"w"}},
		{CompanyName: "C"},
	}
	e := New(DefaultWeights(), 0, "")
	for _, q := range quotes {
		b := e.Score(q, quotes, nil)
		assert.GreaterOrEqual(t, b.Score, 0.0, q.CompanyName)
		assert.LessOrEqual(t, b.Score, 100.0, q.CompanyName)
		for _, factor := range []float64{b.Premium, b.Rate, b.Benefits, b.Exclusions, b.Warranties, b.Extensions, b.Subjectivities, b.Reputation} {
			assert.GreaterOrEqual(t, factor, 0.0)
			assert.LessOrEqual(t, factor, 1.0)
		}
	}
}

func TestScoreMissingPremiumIsWorstCase(t *testing.T) {
	with := model.Quote{CompanyName: "With", PremiumAmount: f(8000)}
	without := model.Quote{CompanyName: "Without"}
	group := []model.Quote{with, without}

	e := New(DefaultWeights(), 0, "")
	assert.InDelta(t, 0.0, e.Score(without, group, nil).Premium, 1e-9)
	// The only usable premium makes min == max, so the holder scores 1.0.
	assert.InDelta(t, 1.0, e.Score(with, group, nil).Premium, 1e-9)
}

func TestScoreEqualFactorsAreNeutral(t *testing.T) {
	group := []model.Quote{
		{CompanyName: "A", PremiumAmount: f(7000), Exclusions: []string{"e"}},
		{CompanyName: "B", PremiumAmount: f(7000), Exclusions: []string{"x"}},
	}
	e := New(DefaultWeights(), 0, "")
	for _, q := range group {
		b := e.Score(q, group, nil)
		assert.InDelta(t, 1.0, b.Premium, 1e-9)
		assert.InDelta(t, 1.0, b.Exclusions, 1e-9)
	}
}

func TestScoreDefaultReputation(t *testing.T) {
	q := model.Quote{CompanyName: "Nobody Knows Insurance"}
	e := New(DefaultWeights(), 0, "")
	b := e.Score(q, []model.Quote{q}, nil)

	assert.InDelta(t, DefaultReputationScore, b.Reputation, 1e-9)
	assert.Equal(t, model.TierStandard, b.ReputationTier)
	assert.Zero(t, b.ReputationRank)
	assert.Empty(t, b.MatchedCompany)
}

func TestScoreCountFactors(t *testing.T) {
	rich := model.Quote{CompanyName: "Rich", KeyBenefits: []string{"a", "b", "c", "d"}, Subjectivities: []string{"s1", "s2", "s3"}}
	lean := model.Quote{CompanyName: "Lean", KeyBenefits: []string{"a"}}
	group := []model.Quote{rich, lean}

	e := New(DefaultWeights(), 0, "")
	br := e.Score(rich, group, nil)
	bl := e.Score(lean, group, nil)

	assert.InDelta(t, 1.0, br.Benefits, 1e-9)
	assert.InDelta(t, 0.0, bl.Benefits, 1e-9)
	// Fewer subjectivities is better; the missing list counts as zero.
	assert.InDelta(t, 0.0, br.Subjectivities, 1e-9)
	assert.InDelta(t, 1.0, bl.Subjectivities, 1e-9)
}
