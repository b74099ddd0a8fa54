package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain name", "Tawuniya", "tawuniya"},
		{"strips legal suffixes", "Walaa Cooperative Insurance Company", "walaa"},
		{"strips parenthetical", "Gulf Insurance Group (GIG)", "gulf gig"},
		{"co-operative spelling", "Al Sagr Co-operative Insurance Company", "al sagr"},
		{"takaful", "Al Rajhi Takaful Company", "al rajhi"},
		{"arabic preserved", "التعاونية", "التعاونية"},
		{"punctuation removed", "Al-Etihad Cooperative Insurance Co.", "aletihad"},
		{"whitespace collapsed", "  Malath   Cooperative  Insurance ", "malath"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestCharSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, charSimilarity("Walaa Insurance", "Walaa Cooperative Insurance Company"), 1e-9)
	assert.InDelta(t, 0.9, charSimilarity("Gulf Insurance Group", "Gulf Insurance Group (GIG)"), 1e-9)
	assert.Zero(t, charSimilarity("", "anything"))
	assert.Less(t, charSimilarity("Tawuniya", "Zurich Insurance"), 0.5)
}

func TestKeywordOverlap(t *testing.T) {
	// "gulf" is shared; the larger set has two keywords.
	got := keywordOverlap("Gulf Union", "Gulf Insurance Group")
	assert.InDelta(t, 0.5, got, 1e-9)

	assert.InDelta(t, 1.0, keywordOverlap("Malath", "Malath Cooperative Insurance Company"), 1e-9)
	assert.Zero(t, keywordOverlap("Tawuniya", "Zurich"))
}
