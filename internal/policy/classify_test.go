package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hakem-ai/compare-cli/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		policyType string
		want       model.PolicyCategory
	}{
		{"property all risk", "Property All Risk", model.CategoryProperty},
		{"fire and perils", "Fire & Allied Perils", model.CategoryProperty},
		{"par abbreviation", "PAR", model.CategoryProperty},
		{"business interruption", "Business Interruption", model.CategoryProperty},
		{"general liability", "Commercial General Liability", model.CategoryLiability},
		{"third party hyphenated", "Third-Party Liability", model.CategoryLiability},
		{"public liability", "Public Liability", model.CategoryLiability},
		{"medical", "Group Medical", model.CategoryMedical},
		{"professional indemnity", "Professional Indemnity", model.CategoryMedical},
		{"motor fleet", "Motor Fleet", model.CategoryMotor},
		{"marine cargo does not hit motor", "Marine Cargo", model.CategoryMarine},
		{"hull", "Hull & Machinery", model.CategoryMarine},
		{"contractors all risk wins as property", "Contractors All Risk", model.CategoryProperty},
		{"erection all risks", "Erection All Risks", model.CategoryEngineering},
		{"engineering", "Engineering Insurance", model.CategoryEngineering},
		{"empty", "", model.CategoryOther},
		{"whitespace", "   ", model.CategoryOther},
		{"unrecognized", "Travel Assistance", model.CategoryOther},
		{"partial word no match", "Particular Risks", model.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.policyType))
		})
	}
}

// Quotes classified into different categories must never share a ranking
// group; the classifier output is the grouping key.
func TestClassifyIsGroupingKey(t *testing.T) {
	a := Classify("Property All Risk")
	b := Classify("Public Liability")
	assert.NotEqual(t, a, b)
}
