package reputation

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS reputation_scores (
	company_name TEXT PRIMARY KEY COLLATE NOCASE,
	score        REAL NOT NULL,
	tier         TEXT NOT NULL DEFAULT '',
	rank         INTEGER NOT NULL DEFAULT 0,
	aliases      TEXT NOT NULL DEFAULT '[]',
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_reputation_scores_rank ON reputation_scores(rank);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.ReputationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT company_name, score, tier, rank, aliases FROM reputation_scores ORDER BY rank, company_name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list reputation scores")
	}
	defer rows.Close()

	var out []model.ReputationRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate reputation scores")
}

func (s *SQLiteStore) Get(ctx context.Context, companyName string) (*model.ReputationRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT company_name, score, tier, rank, aliases FROM reputation_scores WHERE company_name = ? COLLATE NOCASE`,
		companyName)
	rec, err := scanRecord(row.Scan)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, rec model.ReputationRecord) error {
	aliasJSON, err := json.Marshal(rec.Aliases)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal aliases")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reputation_scores (company_name, score, tier, rank, aliases, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(company_name) DO UPDATE SET
			score = excluded.score,
			tier = excluded.tier,
			rank = excluded.rank,
			aliases = excluded.aliases,
			updated_at = excluded.updated_at`,
		rec.CompanyName, rec.Score, string(rec.Tier), rec.Rank, string(aliasJSON), time.Now().UTC())
	return eris.Wrapf(err, "sqlite: upsert reputation score %s", rec.CompanyName)
}

func (s *SQLiteStore) Delete(ctx context.Context, companyName string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM reputation_scores WHERE company_name = ? COLLATE NOCASE`, companyName)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete reputation score %s", companyName)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("reputation: company %s not found", companyName)
	}
	return nil
}

// scanRecord reads one row via the given scan function and unmarshals the
// alias list. Shared between the row and rows paths.
func scanRecord(scan func(dest ...any) error) (*model.ReputationRecord, error) {
	var rec model.ReputationRecord
	var tier, aliasJSON string
	if err := scan(&rec.CompanyName, &rec.Score, &tier, &rec.Rank, &aliasJSON); err != nil {
		return nil, eris.Wrap(err, "sqlite: scan reputation score")
	}
	rec.Tier = model.Tier(tier)
	if aliasJSON != "" {
		if err := json.Unmarshal([]byte(aliasJSON), &rec.Aliases); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal aliases")
		}
	}
	return &rec, nil
}
