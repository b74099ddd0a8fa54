package model

import "time"

// ScoreBreakdown holds per-factor normalized sub-scores for one quote. Factor
// values are in [0,1]; Score is the weighted total on the 0-100 scale.
type ScoreBreakdown struct {
	Premium        float64 `json:"premium"`
	Rate           float64 `json:"rate"`
	Benefits       float64 `json:"benefits"`
	Exclusions     float64 `json:"exclusions"`
	Warranties     float64 `json:"warranties"`
	Extensions     float64 `json:"extensions"`
	Subjectivities float64 `json:"subjectivities"`
	Reputation     float64 `json:"reputation"`

	ReputationTier Tier    `json:"reputation_tier"`
	ReputationRank int     `json:"reputation_rank,omitempty"`
	MatchedCompany string  `json:"matched_company,omitempty"`
	Score          float64 `json:"score"` // final, [0,100]
}

// RankedQuote is a quote with its rank, score, and recommendation badge
// within its policy category group.
type RankedQuote struct {
	Rank      int            `json:"rank"`
	Badge     Badge          `json:"recommendation_badge"`
	Category  PolicyCategory `json:"category"`
	Quote     Quote          `json:"quote"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"score_breakdown"`
}

// UniqueItemSet lists, per item category, the clauses a provider offers that
// no other provider in the comparison states in any semantically similar form.
type UniqueItemSet struct {
	Warranties     []string `json:"unique_warranties,omitempty"`
	Subjectivities []string `json:"unique_subjectivities,omitempty"`
	Benefits       []string `json:"unique_benefits,omitempty"`
	Exclusions     []string `json:"unique_exclusions,omitempty"`
}

// PriceSpread describes the cheapest-vs-most-expensive gap within a category.
type PriceSpread struct {
	Category      PolicyCategory `json:"category"`
	Cheapest      string         `json:"cheapest"`
	MostExpensive string         `json:"most_expensive"`
	Difference    float64        `json:"difference"`
	DifferencePct float64        `json:"difference_pct"`
}

// CountSpread describes the gap in list sizes (benefits, exclusions) between
// the best- and worst-placed provider.
type CountSpread struct {
	Attribute string `json:"attribute"`
	Most      string `json:"most"`
	MostCount int    `json:"most_count"`
	Least     string `json:"least"`
	LeastCount int   `json:"least_count"`
}

// KeyDifferences aggregates the spreads and the per-provider unique items.
type KeyDifferences struct {
	PriceSpreads     []PriceSpread            `json:"price_spreads,omitempty"`
	BenefitSpread    *CountSpread             `json:"benefit_spread,omitempty"`
	ExclusionSpread  *CountSpread             `json:"exclusion_spread,omitempty"`
	UniqueByProvider map[string]UniqueItemSet `json:"unique_by_provider,omitempty"`
}

// MatrixCell is one provider's value for one compared attribute.
type MatrixCell struct {
	Provider string   `json:"provider"`
	Value    string   `json:"value,omitempty"`
	Number   *float64 `json:"number,omitempty"`
	Items    []string `json:"items,omitempty"`
}

// SideBySide is the full attribute-by-provider comparison matrix plus the
// overall winner. The winner is the highest-scoring quote across the whole
// input and is a display artifact only; it does not imply cross-category
// ranking validity.
type SideBySide struct {
	Matrix map[string][]MatrixCell `json:"comparison_matrix"`
	Winner string                  `json:"winner,omitempty"`
}

// MixedLinesWarning is emitted when the input spans more than one policy
// category. Ranking still proceeds independently per category.
type MixedLinesWarning struct {
	Categories []PolicyCategory `json:"categories"`
	Message    string           `json:"message"`
}

// ComparisonResult is the engine's final output for one invocation.
type ComparisonResult struct {
	ComparisonID      string                           `json:"comparison_id"`
	TotalQuotes       int                              `json:"total_quotes"`
	Rankings          map[PolicyCategory][]RankedQuote `json:"rankings"`
	MixedLinesWarning *MixedLinesWarning               `json:"mixed_lines_warning,omitempty"`
	KeyDifferences    KeyDifferences                   `json:"key_differences"`
	SideBySide        SideBySide                       `json:"side_by_side"`
	GeneratedAt       time.Time                        `json:"generated_at"`
}
