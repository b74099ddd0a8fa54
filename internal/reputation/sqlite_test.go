package reputation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakem-ai/compare-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "reputation.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteStore_UpsertGetRoundtrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	rec := model.ReputationRecord{
		CompanyName: "Tawuniya",
		Score:       0.96,
		Tier:        model.TierPremium,
		Rank:        1,
		Aliases:     []string{"التعاونية", "Company for Cooperative Insurance"},
	}
	require.NoError(t, s.Upsert(ctx, rec))

	got, err := s.Get(ctx, "tawuniya")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.CompanyName, got.CompanyName)
	assert.InDelta(t, rec.Score, got.Score, 1e-9)
	assert.Equal(t, rec.Tier, got.Tier)
	assert.Equal(t, rec.Rank, got.Rank)
	assert.Equal(t, rec.Aliases, got.Aliases)
}

func TestSQLiteStore_UpsertOverwrites(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, model.ReputationRecord{CompanyName: "Walaa", Score: 0.92, Tier: model.TierPremium, Rank: 2}))
	require.NoError(t, s.Upsert(ctx, model.ReputationRecord{CompanyName: "Walaa", Score: 0.85, Tier: model.TierStrong, Rank: 5}))

	got, err := s.Get(ctx, "Walaa")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 0.85, got.Score, 1e-9)
	assert.Equal(t, 5, got.Rank)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := newTestSQLite(t)

	got, err := s.Get(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_ListOrderedByRank(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, model.ReputationRecord{CompanyName: "Gulf Union", Score: 0.72, Rank: 21}))
	require.NoError(t, s.Upsert(ctx, model.ReputationRecord{CompanyName: "Tawuniya", Score: 0.96, Rank: 1}))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Tawuniya", all[0].CompanyName)
	assert.Equal(t, "Gulf Union", all[1].CompanyName)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, model.ReputationRecord{CompanyName: "Salama", Score: 0.80, Rank: 14}))
	require.NoError(t, s.Delete(ctx, "SALAMA"))

	got, err := s.Get(ctx, "Salama")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = s.Delete(ctx, "Salama")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSeedPopulatesStore(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	n, err := Seed(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultRecords()), n)

	r := NewResolver(s, 0)
	rec, err := r.Resolve(ctx, "ميدغلف")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Mediterranean and Gulf Insurance", rec.CompanyName)
}
