package textmatch

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Default similarity thresholds per clause category. Subjectivities are
// phrased more loosely across insurers, so they get a softer cutoff.
const (
	DefaultThreshold        = 0.80
	SubjectivitiesThreshold = 0.75
)

// keyPhrases maps a risk-domain topic to the phrases that signal it. Two
// clauses sharing any topic are treated as the same requirement even when
// their wording diverges past the character-ratio cutoff.
var keyPhrases = map[string][]string{
	"sprinkler":       {"sprinkler", "sprinklers"},
	"security":        {"security", "guard", "cctv", "camera", "surveillance"},
	"fire":            {"fire extinguish", "fire fight", "fire equipment", "fire appliance"},
	"smoking":         {"no smoking", "smoking", "smoke"},
	"hot_work":        {"hot work", "hotwork", "welding", "cutting", "grinding"},
	"housekeeping":    {"housekeeping", "house keeping", "cleanliness", "clean"},
	"hazardous":       {"hazardous", "dangerous", "chemical"},
	"civil_defense":   {"civil defense", "civil defence", "cd certificate"},
	"stillage":        {"stillage", "pallets", "raised", "elevated", "off ground", "above ground"},
	"bookkeeping":     {"bookkeeping", "book keeping", "accounting", "records"},
	"premium_payment": {"premium payment", "payment", "inception"},
	"testing":         {"testing", "commissioning", "test", "commission"},
	"pump":            {"pump", "fire pump", "diesel pump", "water pump"},
	"gps":             {"gps", "coordinates", "location", "longitude", "latitude"},
	"photos":          {"photo", "picture", "image", "visual", "photograph"},
	"valuation":       {"valuation", "appraisal", "assessment report"},
	"survey":          {"survey", "inspection", "risk assessment"},
	"kyc":             {"kyc", "aml", "know your customer"},
	"regulatory":      {"sama", "insurance authority", "circular"},
	"business_plan":   {"business contingency", "continuity plan", "disaster recovery"},
}

// AreSimilar reports whether two clauses are semantically equivalent. It is
// symmetric: every strategy treats a and b identically.
func AreSimilar(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	if levenshtein.Similarity(na, nb, nil) >= threshold {
		return true
	}
	return sharesTopic(na, nb)
}

// sharesTopic reports whether both normalized clauses hit at least one common
// key-phrase topic.
func sharesTopic(na, nb string) bool {
	for _, phrases := range keyPhrases {
		var inA, inB bool
		for _, p := range phrases {
			if !inA && strings.Contains(na, p) {
				inA = true
			}
			if !inB && strings.Contains(nb, p) {
				inB = true
			}
			if inA && inB {
				return true
			}
		}
	}
	return false
}
