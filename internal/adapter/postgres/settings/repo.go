// Package settings implements the key/value application settings repository.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
)

const adminPasswordHashKey = "admin_password_hash"

// Repo provides application settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `SELECT value FROM app_settings WHERE key = $1`

// Get returns the value stored under key, or "" when the key is absent.
// An absent key is not an error; callers fall back to their defaults.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var value string
	err := q.QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}

	return value, nil
}

const setSQL = `
INSERT INTO app_settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

// Set stores value under key, replacing any previous value.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, setSQL, key, value); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}

	return nil
}

// AdminPasswordHash returns the stored admin password bcrypt hash, or "" when
// none has been provisioned yet.
func (r *Repo) AdminPasswordHash(ctx context.Context) (string, error) {
	return r.Get(ctx, adminPasswordHashKey)
}
