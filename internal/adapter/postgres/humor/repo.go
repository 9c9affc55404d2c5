// Package humor implements the humor item repository using PostgreSQL.
// UUIDs are caller-supplied document keys, so writes are upserts keyed by uuid.
package humor

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
	"github.com/dailydoses/humor-backend/internal/domain"
	"github.com/dailydoses/humor-backend/pkg/dateutil"
)

// Repo provides humor persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new humor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const humorColumns = `uuid, category, context, punchline, context_list, sender, source, author,
	release_date, created_date, idx, active, bundle_uuid, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByUUIDSQL = `
SELECT ` + humorColumns + `
FROM humors
WHERE uuid = $1`

// GetByUUID returns a humor item by its document uuid.
// Returns domain.ErrNotFound if no such item exists.
func (r *Repo) GetByUUID(ctx context.Context, humorUUID string) (*domain.Humor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByUUIDSQL, humorUUID)
	if err != nil {
		return nil, postgres.MapError(err, "humor", humorUUID)
	}
	defer rows.Close()

	h, err := scanOne(rows)
	if err != nil {
		return nil, postgres.MapError(err, "humor", humorUUID)
	}

	return h, nil
}

// List returns humor items matching the filter, ordered by release_date DESC,
// idx ASC. When the filter carries no date, it falls back to items released in
// the last seven days up to and including today (UTC). Returns an empty slice
// (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
	b := psql.Select(
		"uuid", "category", "context", "punchline", "context_list", "sender", "source", "author",
		"release_date", "created_date", "idx", "active", "bundle_uuid", "created_at", "updated_at",
	).
		From("humors").
		OrderBy("release_date DESC", "idx ASC")

	if f.Category != nil {
		b = b.Where(sq.Eq{"category": string(*f.Category)})
	}
	if f.Date != nil {
		b = b.Where(sq.Eq{"release_date": *f.Date})
	} else {
		b = b.Where(sq.Gt{"release_date": dateutil.AddDays(time.Now(), -7)})
		b = b.Where(sq.LtOrEq{"release_date": dateutil.Today()})
	}
	if f.Active != nil {
		b = b.Where(sq.Eq{"active": *f.Active})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build humor list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list humors: %w", err)
	}
	defer rows.Close()

	result, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("list humors: %w", err)
	}

	return result, nil
}

const listByBundleSQL = `
SELECT ` + humorColumns + `
FROM humors
WHERE bundle_uuid = $1
ORDER BY idx ASC`

// ListByBundle returns all humor items belonging to a bundle, ordered by idx.
// Returns an empty slice (not nil) when the bundle has no members.
func (r *Repo) ListByBundle(ctx context.Context, bundleUUID string) ([]*domain.Humor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByBundleSQL, bundleUUID)
	if err != nil {
		return nil, fmt.Errorf("list humors by bundle: %w", err)
	}
	defer rows.Close()

	result, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("list humors by bundle: %w", err)
	}

	return result, nil
}

const firstOfDaySQL = `
SELECT ` + humorColumns + `
FROM humors
WHERE category = $1 AND release_date = $2 AND idx = 0 AND active
LIMIT 1`

// FirstOfDay returns the idx-0 active humor of a category released on the given
// date (the daily lead item used for the push notification).
// Returns domain.ErrNotFound when the day has no such item.
func (r *Repo) FirstOfDay(ctx context.Context, category domain.HumorCategory, date string) (*domain.Humor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, firstOfDaySQL, string(category), date)
	if err != nil {
		return nil, postgres.MapError(err, "humor", string(category)+"/"+date)
	}
	defer rows.Close()

	h, err := scanOne(rows)
	if err != nil {
		return nil, postgres.MapError(err, "humor", string(category)+"/"+date)
	}

	return h, nil
}

const existsSQL = `SELECT EXISTS(SELECT 1 FROM humors WHERE uuid = $1)`

// Exists reports whether a humor item with the given uuid is stored.
func (r *Repo) Exists(ctx context.Context, humorUUID string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, humorUUID).Scan(&exists); err != nil {
		return false, fmt.Errorf("humor exists: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const upsertSQL = `
INSERT INTO humors (uuid, category, context, punchline, context_list, sender, source, author,
	release_date, created_date, idx, active, bundle_uuid, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
ON CONFLICT (uuid) DO UPDATE SET
	category = EXCLUDED.category,
	context = EXCLUDED.context,
	punchline = EXCLUDED.punchline,
	context_list = EXCLUDED.context_list,
	sender = EXCLUDED.sender,
	source = EXCLUDED.source,
	author = EXCLUDED.author,
	release_date = EXCLUDED.release_date,
	created_date = EXCLUDED.created_date,
	idx = EXCLUDED.idx,
	active = EXCLUDED.active,
	bundle_uuid = COALESCE(EXCLUDED.bundle_uuid, humors.bundle_uuid),
	updated_at = now()`

// Upsert inserts a humor item, replacing any existing document with the same
// uuid. Matches the add semantics of a document store set(). Bundle membership
// is kept on conflict unless the new item names one; clearing it is a bundle
// curation concern, not a re-add side effect.
func (r *Repo) Upsert(ctx context.Context, h *domain.Humor) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	contextList := h.ContextList
	if contextList == nil {
		contextList = []string{}
	}

	_, err := q.Exec(ctx, upsertSQL,
		h.UUID, string(h.Category), h.Context, h.Punchline, contextList, h.Sender, h.Source, h.Author,
		h.ReleaseDate, h.CreatedDate, h.Index, h.Active, h.BundleUUID,
	)
	if err != nil {
		return postgres.MapError(err, "humor", h.UUID)
	}

	return nil
}

const updateSQL = `
UPDATE humors SET
	author = $2,
	context = $3,
	punchline = $4,
	context_list = $5,
	created_date = $6,
	idx = $7,
	sender = $8,
	source = $9,
	updated_at = now()
WHERE uuid = $1`

// Update applies a partial merge to an existing humor item. uuid, category,
// release_date and active are never touched by an update.
// Returns domain.ErrNotFound when the item does not exist.
func (r *Repo) Update(ctx context.Context, humorUUID string, upd domain.HumorUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	contextList := upd.ContextList
	if contextList == nil {
		contextList = []string{}
	}

	tag, err := q.Exec(ctx, updateSQL,
		humorUUID, upd.Author, upd.Context, upd.Punchline, contextList,
		upd.CreatedDate, upd.Index, upd.Sender, upd.Source,
	)
	if err != nil {
		return postgres.MapError(err, "humor", humorUUID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("humor %s: %w", humorUUID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanOne(rows pgx.Rows) (*domain.Humor, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}

	h, err := scanHumor(rows)
	if err != nil {
		return nil, err
	}

	return h, rows.Err()
}

func scanAll(rows pgx.Rows) ([]*domain.Humor, error) {
	var result []*domain.Humor
	for rows.Next() {
		h, err := scanHumor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Humor{}
	}

	return result, nil
}

func scanHumor(rows pgx.Rows) (*domain.Humor, error) {
	var h domain.Humor
	var category string

	err := rows.Scan(
		&h.UUID, &category, &h.Context, &h.Punchline, &h.ContextList, &h.Sender, &h.Source, &h.Author,
		&h.ReleaseDate, &h.CreatedDate, &h.Index, &h.Active, &h.BundleUUID, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.Category = domain.HumorCategory(category)
	if h.ContextList == nil {
		h.ContextList = []string{}
	}

	return &h, nil
}
