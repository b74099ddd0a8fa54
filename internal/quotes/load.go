// Package quotes loads extracted quote files for the CLI. Files are JSON or
// YAML, either a bare array of quotes or a {"quotes": [...]} document.
package quotes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// DefaultClientName is substituted when the extractor produced no insured
// party name.
const DefaultClientName = "Not specified"

// rawQuote tolerates the loose typing of extractor output: premiums may be
// numbers or formatted strings, rates numbers or suffixed strings.
type rawQuote struct {
	CompanyName    string         `json:"company_name" yaml:"company_name"`
	ClientName     string         `json:"client_name" yaml:"client_name"`
	PolicyType     string         `json:"policy_type" yaml:"policy_type"`
	PremiumAmount  any            `json:"premium_amount" yaml:"premium_amount"`
	Rate           any            `json:"rate" yaml:"rate"`
	Deductible     string         `json:"deductible" yaml:"deductible"`
	CoverageLimit  string         `json:"coverage_limit" yaml:"coverage_limit"`
	KeyBenefits    []string       `json:"key_benefits" yaml:"key_benefits"`
	Exclusions     []string       `json:"exclusions" yaml:"exclusions"`
	Warranties     []string       `json:"warranties" yaml:"warranties"`
	Subjectivities []string       `json:"subjectivities" yaml:"subjectivities"`
	Extensions     []string       `json:"extensions" yaml:"extensions"`
	FileName       string         `json:"file_name" yaml:"file_name"`
	AdditionalInfo map[string]any `json:"additional_info" yaml:"additional_info"`
}

type quoteFile struct {
	Quotes []rawQuote `json:"quotes" yaml:"quotes"`
}

// Load reads a quote file and returns normalized quotes. Quotes without a
// company name are dropped with a warning; everything else is tolerated and
// mapped to documented defaults.
func Load(path string) ([]model.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "quotes: read %s", path)
	}

	raws, err := decode(path, data)
	if err != nil {
		return nil, err
	}

	out := make([]model.Quote, 0, len(raws))
	for i, rq := range raws {
		if strings.TrimSpace(rq.CompanyName) == "" {
			zap.L().Warn("quotes: dropping quote without company name",
				zap.String("file", path),
				zap.Int("index", i))
			continue
		}
		out = append(out, normalize(rq))
	}
	return out, nil
}

func decode(path string, data []byte) ([]rawQuote, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var list []rawQuote
		if err := yaml.Unmarshal(data, &list); err == nil && len(list) > 0 {
			return list, nil
		}
		var file quoteFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, eris.Wrapf(err, "quotes: parse yaml %s", path)
		}
		return file.Quotes, nil
	default:
		var list []rawQuote
		if err := json.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		var file quoteFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, eris.Wrapf(err, "quotes: parse json %s", path)
		}
		return file.Quotes, nil
	}
}

// normalize converts a raw quote into the engine's model, resolving premium
// and rate typing, the client-name default, and the nested-subjectivities
// fallback once at the boundary.
func normalize(rq rawQuote) model.Quote {
	q := model.Quote{
		CompanyName:    strings.TrimSpace(rq.CompanyName),
		ClientName:     strings.TrimSpace(rq.ClientName),
		PolicyType:     rq.PolicyType,
		PremiumAmount:  toPremium(rq.PremiumAmount),
		Rate:           toRateString(rq.Rate),
		Deductible:     rq.Deductible,
		CoverageLimit:  rq.CoverageLimit,
		KeyBenefits:    rq.KeyBenefits,
		Exclusions:     rq.Exclusions,
		Warranties:     rq.Warranties,
		Subjectivities: rq.Subjectivities,
		Extensions:     rq.Extensions,
		FileName:       rq.FileName,
		AdditionalInfo: rq.AdditionalInfo,
	}
	if q.ClientName == "" {
		q.ClientName = DefaultClientName
	}
	if len(q.Subjectivities) == 0 {
		q.Subjectivities = nestedSubjectivities(rq.AdditionalInfo)
	}
	return q
}

func toPremium(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		if t <= 0 {
			return nil
		}
		return &t
	case int:
		if t <= 0 {
			return nil
		}
		f := float64(t)
		return &f
	case string:
		return model.ParsePremium(t)
	default:
		return nil
	}
}

func toRateString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
	case int:
		return fmt.Sprintf("%d", t)
	default:
		return ""
	}
}

// nestedSubjectivityKeys are the sub-lists extractors nest under
// additional_info when they cannot place requirements confidently.
var nestedSubjectivityKeys = []string{
	"binding_requirements",
	"conditions_precedent",
	"documentation_required",
	"subjectivities_list",
	"requirements",
}

// nestedSubjectivities pulls subjectivities out of additional_info. The value
// is either a plain list or a mapping of named sub-lists; duplicates are
// dropped preserving first-seen order.
func nestedSubjectivities(info map[string]any) []string {
	if info == nil {
		return nil
	}
	raw, ok := info["subjectivities"]
	if !ok {
		return nil
	}

	var items []string
	switch t := raw.(type) {
	case []any:
		items = toStrings(t)
	case map[string]any:
		for _, key := range nestedSubjectivityKeys {
			if sub, ok := t[key].([]any); ok {
				items = append(items, toStrings(sub)...)
			}
		}
	}

	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, s := range items {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func toStrings(list []any) []string {
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
