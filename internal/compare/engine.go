// Package compare orchestrates the full quote comparison pipeline: classify,
// resolve reputations, score, rank, dedupe, and assemble the final result.
package compare

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hakem-ai/compare-cli/internal/dedupe"
	"github.com/hakem-ai/compare-cli/internal/model"
	"github.com/hakem-ai/compare-cli/internal/ranking"
	"github.com/hakem-ai/compare-cli/internal/scoring"
)

// Resolver looks up reputation records for company names.
type Resolver interface {
	Resolve(ctx context.Context, companyName string) (*model.ReputationRecord, error)
}

// Engine runs comparisons. All collaborators are injected; instances are
// stateless and safe for concurrent use.
type Engine struct {
	resolver  Resolver
	scoring   *scoring.Engine
	dedupe    *dedupe.Engine
	assembler *ranking.Assembler
}

// New wires up a comparison Engine.
func New(resolver Resolver, scoringEngine *scoring.Engine, dedupeEngine *dedupe.Engine, assembler *ranking.Assembler) *Engine {
	return &Engine{
		resolver:  resolver,
		scoring:   scoringEngine,
		dedupe:    dedupeEngine,
		assembler: assembler,
	}
}

// RankAndCompare produces the full comparison for a set of quotes. Empty
// input yields an empty result, not an error; malformed optional fields in
// individual quotes degrade to documented defaults and never abort the run.
func (e *Engine) RankAndCompare(ctx context.Context, quotes []model.Quote) (*model.ComparisonResult, error) {
	result := &model.ComparisonResult{
		ComparisonID: newComparisonID(),
		TotalQuotes:  len(quotes),
		GeneratedAt:  time.Now().UTC(),
	}
	if len(quotes) == 0 {
		return result, nil
	}

	reps, err := e.resolveAll(ctx, quotes)
	if err != nil {
		return nil, err
	}

	groups := ranking.Group(quotes)
	result.MixedLinesWarning = ranking.MixedLines(groups)

	// Score each quote against its category group, keeping input order for
	// the side-by-side matrix.
	scoredByName := make(map[string]model.ScoreBreakdown, len(quotes))
	rankings := make(map[model.PolicyCategory][]model.RankedQuote, len(groups))
	for cat, group := range groups {
		scored := make([]ranking.ScoredQuote, 0, len(group))
		for _, q := range group {
			b := e.scoring.Score(q, group, reps[strings.ToLower(q.CompanyName)])
			scored = append(scored, ranking.ScoredQuote{Quote: q, Breakdown: b})
			scoredByName[q.CompanyName] = b
		}
		rankings[cat] = e.assembler.Assemble(cat, scored)
	}
	result.Rankings = rankings

	unique := e.dedupe.UniqueByProvider(quotes)
	result.KeyDifferences = buildKeyDifferences(groups, quotes, unique)
	result.SideBySide = buildSideBySide(quotes, scoredByName)

	zap.L().Info("compare: comparison complete",
		zap.String("comparison_id", result.ComparisonID),
		zap.Int("quotes", len(quotes)),
		zap.Int("categories", len(groups)))
	return result, nil
}

// resolveAll performs one reputation lookup per distinct company name.
func (e *Engine) resolveAll(ctx context.Context, quotes []model.Quote) (map[string]*model.ReputationRecord, error) {
	out := make(map[string]*model.ReputationRecord)
	for _, q := range quotes {
		key := strings.ToLower(q.CompanyName)
		if _, done := out[key]; done {
			continue
		}
		rec, err := e.resolver.Resolve(ctx, q.CompanyName)
		if err != nil {
			return nil, eris.Wrapf(err, "compare: resolve reputation for %s", q.CompanyName)
		}
		out[key] = rec
	}
	return out, nil
}

// newComparisonID generates an identifier like cmp_1700000000_a1b2c3d4e5f6.
func newComparisonID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("cmp_%d_%s", time.Now().Unix(), hex[:12])
}
