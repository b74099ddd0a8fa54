package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/hakem-ai/compare-cli/internal/compare"
	"github.com/hakem-ai/compare-cli/internal/dedupe"
	"github.com/hakem-ai/compare-cli/internal/model"
	"github.com/hakem-ai/compare-cli/internal/ranking"
	"github.com/hakem-ai/compare-cli/internal/reputation"
	"github.com/hakem-ai/compare-cli/internal/scoring"
)

// openStore connects the configured reputation store backend and runs its
// migration. The caller owns Close.
func openStore(ctx context.Context) (reputation.Store, error) {
	var (
		store reputation.Store
		err   error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		store, err = reputation.NewSQLite(cfg.Store.Path)
	case "postgres":
		store, err = reputation.NewPostgres(ctx, cfg.Store.DatabaseURL, &reputation.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("cmd: unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, eris.Wrap(err, "cmd: open store")
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, eris.Wrap(err, "cmd: migrate store")
	}
	return store, nil
}

// newEngine assembles the comparison pipeline against the given store.
func newEngine(store reputation.Store) *compare.Engine {
	weights := scoring.Weights{
		Premium:        cfg.Scoring.Premium,
		Rate:           cfg.Scoring.Rate,
		Benefits:       cfg.Scoring.Benefits,
		Exclusions:     cfg.Scoring.Exclusions,
		Warranties:     cfg.Scoring.Warranties,
		Extensions:     cfg.Scoring.Extensions,
		Subjectivities: cfg.Scoring.Subjectivities,
		Reputation:     cfg.Scoring.Reputation,
	}

	return compare.New(
		reputation.NewResolver(store, cfg.Similarity.ResolverThreshold),
		scoring.New(weights, cfg.Reputation.DefaultScore, model.Tier(cfg.Reputation.DefaultTier)),
		dedupe.New(cfg.Similarity.Threshold, cfg.Similarity.SubjectivitiesThreshold),
		ranking.New(cfg.Badges.RecommendedCutoff, cfg.Badges.GoodOptionCutoff),
	)
}
