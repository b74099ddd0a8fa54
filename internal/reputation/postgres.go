package reputation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/hakem-ai/compare-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store needs. pgxmock satisfies it,
// which keeps the Postgres store unit-testable without a live database.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(4)
	minConns := int32(1)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS reputation_scores (
	company_name TEXT PRIMARY KEY,
	score        DOUBLE PRECISION NOT NULL,
	tier         TEXT NOT NULL DEFAULT '',
	rank         INTEGER NOT NULL DEFAULT 0,
	aliases      JSONB NOT NULL DEFAULT '[]',
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reputation_scores_rank ON reputation_scores(rank);
CREATE UNIQUE INDEX IF NOT EXISTS idx_reputation_scores_name_ci ON reputation_scores(lower(company_name));
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]model.ReputationRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT company_name, score, tier, rank, aliases FROM reputation_scores ORDER BY rank, company_name`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list reputation scores")
	}
	defer rows.Close()

	var out []model.ReputationRecord
	for rows.Next() {
		rec, err := scanPgRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, eris.Wrap(rows.Err(), "postgres: iterate reputation scores")
}

func (s *PostgresStore) Get(ctx context.Context, companyName string) (*model.ReputationRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT company_name, score, tier, rank, aliases FROM reputation_scores WHERE lower(company_name) = lower($1)`,
		companyName)
	rec, err := scanPgRecord(row.Scan)
	if err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, rec model.ReputationRecord) error {
	aliasJSON, err := json.Marshal(rec.Aliases)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal aliases")
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO reputation_scores (company_name, score, tier, rank, aliases, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (company_name) DO UPDATE SET
			score = EXCLUDED.score,
			tier = EXCLUDED.tier,
			rank = EXCLUDED.rank,
			aliases = EXCLUDED.aliases,
			updated_at = EXCLUDED.updated_at`,
		rec.CompanyName, rec.Score, string(rec.Tier), rec.Rank, aliasJSON, time.Now().UTC())
	return eris.Wrapf(err, "postgres: upsert reputation score %s", rec.CompanyName)
}

func (s *PostgresStore) Delete(ctx context.Context, companyName string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM reputation_scores WHERE lower(company_name) = lower($1)`, companyName)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete reputation score %s", companyName)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("reputation: company %s not found", companyName)
	}
	return nil
}

func scanPgRecord(scan func(dest ...any) error) (*model.ReputationRecord, error) {
	var rec model.ReputationRecord
	var tier string
	var aliasJSON []byte
	if err := scan(&rec.CompanyName, &rec.Score, &tier, &rec.Rank, &aliasJSON); err != nil {
		return nil, eris.Wrap(err, "postgres: scan reputation score")
	}
	rec.Tier = model.Tier(tier)
	if len(aliasJSON) > 0 {
		if err := json.Unmarshal(aliasJSON, &rec.Aliases); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal aliases")
		}
	}
	return &rec, nil
}
