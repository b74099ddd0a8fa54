package model

// Tier is a named reputation bucket derived from a provider's score.
type Tier string

const (
	TierPremium    Tier = "Premium"
	TierStrong     Tier = "Strong"
	TierSolid      Tier = "Solid"
	TierBaseline   Tier = "Baseline"
	TierChallenged Tier = "Challenged"
	TierDisabled   Tier = "Disabled"
	// TierStandard is the documented default for providers with no stored
	// reputation record.
	TierStandard Tier = "Standard"
)

// ReputationRecord is an administrator-curated provider reputation entry.
// The engine reads these; it never mutates the backing store.
type ReputationRecord struct {
	CompanyName string   `json:"company_name" yaml:"company_name"`
	Score       float64  `json:"score" yaml:"score"` // [0,1]
	Tier        Tier     `json:"tier,omitempty" yaml:"tier,omitempty"`
	Rank        int      `json:"rank,omitempty" yaml:"rank,omitempty"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// TierFromScore maps a [0,1] reputation score onto its tier using the fixed
// bucket table. Used when a record's tier is not stored explicitly.
func TierFromScore(score float64) Tier {
	switch {
	case score == 0:
		return TierDisabled
	case score >= 0.90:
		return TierPremium
	case score >= 0.80:
		return TierStrong
	case score >= 0.70:
		return TierSolid
	case score >= 0.60:
		return TierBaseline
	default:
		return TierChallenged
	}
}

// EffectiveTier returns the stored tier, falling back to the score-derived
// bucket when the tier was left unset.
func (r *ReputationRecord) EffectiveTier() Tier {
	if r.Tier != "" {
		return r.Tier
	}
	return TierFromScore(r.Score)
}
