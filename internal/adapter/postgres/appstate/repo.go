// Package appstate implements the single-row application state repository.
// The table holds one row keyed by id = 1.
package appstate

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
)

// Repo provides app state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new app state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const lastResetDateSQL = `SELECT last_reset_date FROM app_state WHERE id = 1`

// LastResetDate returns the stored last reset date (yyyy-mm-dd). An absent row
// reads as the empty string, not an error.
func (r *Repo) LastResetDate(ctx context.Context) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var date string
	err := q.QueryRow(ctx, lastResetDateSQL).Scan(&date)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get last reset date: %w", err)
	}

	return date, nil
}

const setLastResetDateSQL = `
INSERT INTO app_state (id, last_reset_date, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET last_reset_date = EXCLUDED.last_reset_date, updated_at = now()`

// SetLastResetDate records the date of the latest daily reset.
func (r *Repo) SetLastResetDate(ctx context.Context, date string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, setLastResetDateSQL, date); err != nil {
		return fmt.Errorf("set last reset date: %w", err)
	}

	return nil
}
