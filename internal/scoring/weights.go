// Package scoring computes the weighted multi-factor score for each quote.
package scoring

import (
	"math"

	"github.com/rotisserie/eris"
)

// Weights holds the per-factor contribution to the final score. Quote factors
// carry 0.70 combined; reputation carries the remaining 0.30 and is always
// part of the sum, never conditionally dropped.
type Weights struct {
	Premium        float64 `mapstructure:"premium" yaml:"premium"`
	Rate           float64 `mapstructure:"rate" yaml:"rate"`
	Benefits       float64 `mapstructure:"benefits" yaml:"benefits"`
	Exclusions     float64 `mapstructure:"exclusions" yaml:"exclusions"`
	Warranties     float64 `mapstructure:"warranties" yaml:"warranties"`
	Extensions     float64 `mapstructure:"extensions" yaml:"extensions"`
	Subjectivities float64 `mapstructure:"subjectivities" yaml:"subjectivities"`
	Reputation     float64 `mapstructure:"reputation" yaml:"reputation"`
}

// DefaultWeights returns the production weight set.
func DefaultWeights() Weights {
	return Weights{
		Premium:        0.25,
		Rate:           0.20,
		Benefits:       0.10,
		Exclusions:     0.05,
		Warranties:     0.04,
		Extensions:     0.04,
		Subjectivities: 0.02,
		Reputation:     0.30,
	}
}

// Sum returns the total of all factor weights.
func (w Weights) Sum() float64 {
	return w.Premium + w.Rate + w.Benefits + w.Exclusions +
		w.Warranties + w.Extensions + w.Subjectivities + w.Reputation
}

// Validate rejects negative weights and weight sets that do not total 1.0.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"premium", w.Premium},
		{"rate", w.Rate},
		{"benefits", w.Benefits},
		{"exclusions", w.Exclusions},
		{"warranties", w.Warranties},
		{"extensions", w.Extensions},
		{"subjectivities", w.Subjectivities},
		{"reputation", w.Reputation},
	} {
		if f.value < 0 {
			return eris.Errorf("scoring: weight %s is negative (%.4f)", f.name, f.value)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > 1e-6 {
		return eris.Errorf("scoring: weights sum to %.6f, want 1.0", sum)
	}
	return nil
}
