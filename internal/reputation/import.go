package reputation

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// ImportXLSX bulk-upserts reputation records from a market-ranking
// spreadsheet. Expected columns: company name, score [0,1], tier (optional),
// rank (optional), aliases (optional, semicolon-separated). The first row is
// treated as a header. Returns the number of imported records.
func ImportXLSX(ctx context.Context, store Store, path string) (int, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return 0, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return 0, eris.Errorf("xlsx: %s has no sheets", path)
	}

	imported := 0
	for i, row := range f.Sheets[0].Rows {
		if i == 0 {
			continue
		}
		rec, err := recordFromRow(row)
		if err != nil {
			return imported, eris.Wrapf(err, "xlsx: row %d", i+1)
		}
		if rec == nil {
			continue
		}
		if err := store.Upsert(ctx, *rec); err != nil {
			return imported, eris.Wrapf(err, "reputation: import %s", rec.CompanyName)
		}
		imported++
	}

	zap.L().Info("reputation: imported records from spreadsheet",
		zap.String("path", path),
		zap.Int("records", imported))
	return imported, nil
}

// recordFromRow parses one spreadsheet row. Blank rows return nil without
// error so trailing empty rows do not abort the import.
func recordFromRow(row *xlsx.Row) (*model.ReputationRecord, error) {
	cell := func(i int) string {
		if i >= len(row.Cells) {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].String())
	}

	name := cell(0)
	if name == "" {
		return nil, nil
	}

	score, err := strconv.ParseFloat(cell(1), 64)
	if err != nil {
		return nil, eris.Wrapf(err, "parse score %q", cell(1))
	}
	if score < 0 || score > 1 {
		return nil, eris.Errorf("score %.3f out of range [0,1]", score)
	}

	rec := &model.ReputationRecord{
		CompanyName: name,
		Score:       score,
		Tier:        model.Tier(cell(2)),
	}
	if rec.Tier == "" {
		rec.Tier = model.TierFromScore(score)
	}
	if rankStr := cell(3); rankStr != "" {
		rank, err := strconv.Atoi(rankStr)
		if err != nil {
			return nil, eris.Wrapf(err, "parse rank %q", rankStr)
		}
		rec.Rank = rank
	}
	if aliases := cell(4); aliases != "" {
		for _, a := range strings.Split(aliases, ";") {
			if a = strings.TrimSpace(a); a != "" {
				rec.Aliases = append(rec.Aliases, a)
			}
		}
	}
	return rec, nil
}
