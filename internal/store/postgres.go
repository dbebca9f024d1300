package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a PostgreSQL implementation of shrink.Repository. Since
// Postgres has no per-key TTL, expiry lives in an expires_at column and is
// enforced on the read path: an expired row reads as absent.
//
// Expected schema:
//
//	CREATE TABLE shrinks (
//	    origin     TEXT PRIMARY KEY,
//	    target     TEXT NOT NULL,
//	    status     INTEGER NOT NULL,
//	    expires_at TIMESTAMPTZ
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed record store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Fetch(ctx context.Context, origin string) (map[string]string, error) {
	query := `
		SELECT target, status
		FROM shrinks
		WHERE origin = $1
		  AND (expires_at IS NULL OR expires_at > now())
	`

	var (
		target string
		status int
	)

	err := p.pool.QueryRow(ctx, query, origin).Scan(&target, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return map[string]string{}, nil
		}

		return nil, err
	}

	return map[string]string{
		shrink.FieldTarget: target,
		shrink.FieldStatus: strconv.Itoa(status),
	}, nil
}

func (p *PostgresStore) Put(ctx context.Context, origin, target string, status int) error {
	// Upsert keeps the last-write-wins semantics of the Redis adapter; the
	// expiry of any previous record is discarded along with its fields.
	query := `
		INSERT INTO shrinks (origin, target, status, expires_at)
		VALUES ($1, $2, $3, NULL)
		ON CONFLICT (origin) DO UPDATE
		SET target = EXCLUDED.target, status = EXCLUDED.status, expires_at = NULL
	`

	_, err := p.pool.Exec(ctx, query, origin, target, status)

	return err
}

func (p *PostgresStore) ExpireAt(ctx context.Context, origin string, at time.Time) error {
	query := `
		UPDATE shrinks
		SET expires_at = $2
		WHERE origin = $1
	`

	tag, err := p.pool.Exec(ctx, query, origin, at)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Compile-time check.
var _ shrink.Repository = (*PostgresStore)(nil)
