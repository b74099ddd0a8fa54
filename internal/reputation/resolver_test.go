package reputation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// memStore is a fixed in-memory Store for resolver tests.
type memStore struct {
	records []model.ReputationRecord
	listErr error
}

func (m *memStore) List(context.Context) ([]model.ReputationRecord, error) {
	return m.records, m.listErr
}

func (m *memStore) Get(ctx context.Context, name string) (*model.ReputationRecord, error) {
	for i := range m.records {
		if m.records[i].CompanyName == name {
			return &m.records[i], nil
		}
	}
	return nil, nil
}

func (m *memStore) Upsert(_ context.Context, rec model.ReputationRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memStore) Delete(context.Context, string) error { return nil }
func (m *memStore) Migrate(context.Context) error        { return nil }
func (m *memStore) Close() error                         { return nil }

func seededStore() *memStore {
	return &memStore{records: DefaultRecords()}
}

func TestResolveExactMatch(t *testing.T) {
	r := NewResolver(seededStore(), 0)

	rec, err := r.Resolve(context.Background(), "tawuniya")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Tawuniya", rec.CompanyName)
	assert.InDelta(t, 0.96, rec.Score, 1e-9)
	assert.Equal(t, 1, rec.Rank)
}

func TestResolveAliasMatch(t *testing.T) {
	r := NewResolver(seededStore(), 0)

	tests := []struct {
		input string
		want  string
	}{
		{"MedGulf", "Mediterranean and Gulf Insurance"},
		{"التعاونية", "Tawuniya"},
		{"GIG", "Gulf Insurance Group"},
		{"ولاء", "Walaa Cooperative Insurance Company"},
	}
	for _, tt := range tests {
		rec, err := r.Resolve(context.Background(), tt.input)
		require.NoError(t, err, tt.input)
		require.NotNil(t, rec, tt.input)
		assert.Equal(t, tt.want, rec.CompanyName, tt.input)
	}
}

// Without the stored alias, "GIG" still resolves through the initials floor.
func TestResolveAbbreviationInitials(t *testing.T) {
	store := &memStore{records: []model.ReputationRecord{
		{CompanyName: "Gulf Insurance Group", Score: 0.88, Tier: model.TierStrong, Rank: 4},
		{CompanyName: "Tawuniya", Score: 0.96, Tier: model.TierPremium, Rank: 1},
	}}
	r := NewResolver(store, 0)

	rec, err := r.Resolve(context.Background(), "GIG")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Gulf Insurance Group", rec.CompanyName)
}

func TestResolveFuzzyVariant(t *testing.T) {
	r := NewResolver(seededStore(), 0)

	rec, err := r.Resolve(context.Background(), "Walaa Insurance")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Walaa Cooperative Insurance Company", rec.CompanyName)
}

func TestResolveNoMatch(t *testing.T) {
	r := NewResolver(seededStore(), 0)

	rec, err := r.Resolve(context.Background(), "Completely Unknown Insurer XYZ")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestResolveEmptyInput(t *testing.T) {
	r := NewResolver(seededStore(), 0)

	rec, err := r.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestResolveStoreError(t *testing.T) {
	r := NewResolver(&memStore{listErr: assert.AnError}, 0)

	_, err := r.Resolve(context.Background(), "Tawuniya")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list records")
}
