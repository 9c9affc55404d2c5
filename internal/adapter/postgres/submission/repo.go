// Package submission implements the append-only user submission repository.
package submission

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
	"github.com/dailydoses/humor-backend/internal/domain"
)

// Repo provides user submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO user_submissions (nickname, context, punchline, app_uuid, humor_uuid,
	subscription_type, submission_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING id`

// Create appends a new user submission and returns its assigned id.
func (r *Repo) Create(ctx context.Context, s *domain.UserSubmission) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := q.QueryRow(ctx, createSQL,
		s.Nickname, s.Context, s.Punchline, s.AppUUID, s.HumorUUID,
		s.SubscriptionType, s.SubmissionDate,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "submission", s.HumorUUID)
	}

	return id, nil
}

const listSQL = `
SELECT id, nickname, context, punchline, app_uuid, humor_uuid, subscription_type,
	submission_date, created_at
FROM user_submissions
ORDER BY created_at DESC
LIMIT $1`

// List returns the most recent submissions, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context, limit int) ([]*domain.UserSubmission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var result []*domain.UserSubmission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("list submissions: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	if result == nil {
		result = []*domain.UserSubmission{}
	}

	return result, nil
}

func scanSubmission(rows pgx.Rows) (*domain.UserSubmission, error) {
	var s domain.UserSubmission

	err := rows.Scan(
		&s.ID, &s.Nickname, &s.Context, &s.Punchline, &s.AppUUID, &s.HumorUUID,
		&s.SubscriptionType, &s.SubmissionDate, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
