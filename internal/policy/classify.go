// Package policy maps free-form policy type strings onto coarse categories.
package policy

import (
	"strings"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// categoryKeywords is checked in order; the first category with a matching
// keyword wins. Property is first so "property all risk" never lands in
// liability via "third party" style collisions.
var categoryKeywords = []struct {
	category model.PolicyCategory
	keywords []string
}{
	{model.CategoryProperty, []string{"property", "fire", "all risk", "material damage", "business interruption", "par"}},
	{model.CategoryLiability, []string{"liability", "cgl", "general liability", "third party", "public liability"}},
	{model.CategoryMedical, []string{"medical", "health", "malpractice", "professional indemnity"}},
	{model.CategoryMotor, []string{"motor", "auto", "vehicle", "car"}},
	{model.CategoryMarine, []string{"marine", "cargo", "hull"}},
	{model.CategoryEngineering, []string{"engineering", "contractors", "erection"}},
}

// Classify buckets a raw policy type string into a PolicyCategory. Unknown or
// empty input falls through to CategoryOther.
func Classify(policyType string) model.PolicyCategory {
	s := strings.ToLower(strings.TrimSpace(policyType))
	if s == "" {
		return model.CategoryOther
	}
	// Match on word boundaries so "cargo" never trips the motor keyword
	// "car" and "par" never matches inside "particular".
	s = strings.NewReplacer(",", " ", ".", " ", ";", " ", ":", " ", "/", " ", "(", " ", ")", " ", "-", " ", "&", " ").Replace(s)
	padded := " " + strings.Join(strings.Fields(s), " ") + " "
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(padded, " "+kw+" ") {
				return entry.category
			}
		}
	}
	return model.CategoryOther
}
