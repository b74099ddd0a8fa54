package config

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks the configuration for values the engine cannot work with.
// All findings are reported at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			problems = append(problems, "store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required for the postgres driver")
		}
	default:
		problems = append(problems, "store.driver must be sqlite or postgres")
	}

	weights := []struct {
		name  string
		value float64
	}{
		{"premium", c.Scoring.Premium},
		{"rate", c.Scoring.Rate},
		{"benefits", c.Scoring.Benefits},
		{"exclusions", c.Scoring.Exclusions},
		{"warranties", c.Scoring.Warranties},
		{"extensions", c.Scoring.Extensions},
		{"subjectivities", c.Scoring.Subjectivities},
		{"reputation", c.Scoring.Reputation},
	}
	sum := 0.0
	for _, w := range weights {
		if w.value < 0 {
			problems = append(problems, "scoring."+w.name+" must be >= 0")
		}
		sum += w.value
	}
	if math.Abs(sum-1.0) > 1e-6 {
		problems = append(problems, "scoring weights must sum to 1.0")
	}

	for name, v := range map[string]float64{
		"similarity.threshold":                c.Similarity.Threshold,
		"similarity.subjectivities_threshold": c.Similarity.SubjectivitiesThreshold,
		"similarity.resolver_threshold":       c.Similarity.ResolverThreshold,
	} {
		if v <= 0 || v > 1 {
			problems = append(problems, name+" must be in (0, 1]")
		}
	}

	if c.Badges.RecommendedCutoff < 0 || c.Badges.RecommendedCutoff > 100 {
		problems = append(problems, "badges.recommended_cutoff must be between 0 and 100")
	}
	if c.Badges.GoodOptionCutoff < 0 || c.Badges.GoodOptionCutoff > 100 {
		problems = append(problems, "badges.good_option_cutoff must be between 0 and 100")
	}

	if c.Reputation.DefaultScore < 0 || c.Reputation.DefaultScore > 1 {
		problems = append(problems, "reputation.default_score must be in [0, 1]")
	}

	if c.Batch.MaxConcurrentFiles < 1 || c.Batch.MaxConcurrentFiles > 32 {
		problems = append(problems, "batch.max_concurrent_files must be between 1 and 32")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}
