// Package model defines the quote comparison domain types.
package model

import (
	"math"
	"strconv"
	"strings"
)

// PolicyCategory is a coarse insurance line used to scope valid comparisons.
// Quotes of different categories are never ranked against each other.
type PolicyCategory string

const (
	CategoryProperty    PolicyCategory = "property"
	CategoryLiability   PolicyCategory = "liability"
	CategoryMedical     PolicyCategory = "medical"
	CategoryMotor       PolicyCategory = "motor"
	CategoryMarine      PolicyCategory = "marine"
	CategoryEngineering PolicyCategory = "engineering"
	CategoryOther       PolicyCategory = "other"
)

// Badge is the recommendation label attached to a ranked quote.
type Badge string

const (
	BadgeRecommended Badge = "Recommended"
	BadgeBestValue   Badge = "Best Value"
	BadgeGoodOption  Badge = "Good Option"
	BadgeConsider    Badge = "Consider"
)

// Quote is one insurer's extracted offer for a given policy. Instances are
// built once at the input boundary and treated as immutable by the engine.
type Quote struct {
	CompanyName    string         `json:"company_name" yaml:"company_name"`
	ClientName     string         `json:"client_name,omitempty" yaml:"client_name,omitempty"`
	PolicyType     string         `json:"policy_type,omitempty" yaml:"policy_type,omitempty"`
	PremiumAmount  *float64       `json:"premium_amount,omitempty" yaml:"premium_amount,omitempty"`
	Rate           string         `json:"rate,omitempty" yaml:"rate,omitempty"`
	Deductible     string         `json:"deductible,omitempty" yaml:"deductible,omitempty"`
	CoverageLimit  string         `json:"coverage_limit,omitempty" yaml:"coverage_limit,omitempty"`
	KeyBenefits    []string       `json:"key_benefits,omitempty" yaml:"key_benefits,omitempty"`
	Exclusions     []string       `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
	Warranties     []string       `json:"warranties,omitempty" yaml:"warranties,omitempty"`
	Subjectivities []string       `json:"subjectivities,omitempty" yaml:"subjectivities,omitempty"`
	Extensions     []string       `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	FileName       string         `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty" yaml:"additional_info,omitempty"`
}

// Premium returns the premium amount for normalization, or 0 when absent.
// Use HasPremium to distinguish a genuine zero from a missing value.
func (q *Quote) Premium() float64 {
	if q.PremiumAmount == nil {
		return 0
	}
	return *q.PremiumAmount
}

// HasPremium reports whether the quote carries a usable premium amount.
func (q *Quote) HasPremium() bool {
	return q.PremiumAmount != nil && *q.PremiumAmount > 0
}

// SortPremium returns the premium for ordering purposes. Absent or invalid
// premiums sort last (+Inf), per the worst-case rule for missing numerics.
func (q *Quote) SortPremium() float64 {
	if !q.HasPremium() {
		return math.Inf(1)
	}
	return *q.PremiumAmount
}

// RateValue extracts the numeric rate from the rate string, stripping the
// per-mille and percent signs the extractor preserves. Returns 0 when the
// rate is absent or unparsable.
func (q *Quote) RateValue() float64 {
	s := strings.TrimSpace(q.Rate)
	if s == "" {
		return 0
	}
	s = strings.NewReplacer("‰", "", "%", "").Replace(s)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParsePremium normalizes a formatted premium string ("SAR 12,000.00") to a
// float. Returns nil when the value is empty or unparsable.
func ParsePremium(s string) *float64 {
	clean := strings.NewReplacer("SAR", "", "SR", "", "$", "", ",", "").Replace(s)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return &v
}
