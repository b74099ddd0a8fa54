package reputation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/hakem-ai/compare-cli/internal/model"
)

func createScoreSheet(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Scores")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "scores.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestImportXLSX(t *testing.T) {
	path := createScoreSheet(t, [][]string{
		{"Company", "Score", "Tier", "Rank", "Aliases"},
		{"Tawuniya", "0.96", "Premium", "1", "التعاونية; Company for Cooperative Insurance"},
		{"Gulf Union Cooperative Insurance Company", "0.72", "", "21", "Gulf Union"},
		{"", "", "", "", ""},
	})

	store := &memStore{}
	n, err := ImportXLSX(context.Background(), store, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, store.records, 2)
	assert.Equal(t, "Tawuniya", store.records[0].CompanyName)
	assert.Equal(t, model.TierPremium, store.records[0].Tier)
	assert.Equal(t, []string{"التعاونية", "Company for Cooperative Insurance"}, store.records[0].Aliases)

	// Tier omitted in the sheet falls back to the score bucket.
	assert.Equal(t, model.TierSolid, store.records[1].Tier)
	assert.Equal(t, 21, store.records[1].Rank)
}

func TestImportXLSX_BadScore(t *testing.T) {
	path := createScoreSheet(t, [][]string{
		{"Company", "Score"},
		{"Broken Co", "not-a-number"},
	})

	_, err := ImportXLSX(context.Background(), &memStore{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse score")
}

func TestImportXLSX_ScoreOutOfRange(t *testing.T) {
	path := createScoreSheet(t, [][]string{
		{"Company", "Score"},
		{"Overachiever", "1.5"},
	})

	_, err := ImportXLSX(context.Background(), &memStore{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
