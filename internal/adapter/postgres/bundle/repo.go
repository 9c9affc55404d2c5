// Package bundle implements the bundle and bundle-set repositories using
// PostgreSQL. Bundle sets keep their member uuids in a text[] column so the
// curated display order survives round-trips.
package bundle

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
	"github.com/dailydoses/humor-backend/internal/domain"
)

// Repo provides bundle persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bundle repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bundleColumns = `uuid, title, description, category, release_date, humor_count, cover_img_list,
	thumbnail_path, language_code, product_id, preview_count, preview_show_punchline, active,
	created_at, updated_at`

// ---------------------------------------------------------------------------
// Bundle reads
// ---------------------------------------------------------------------------

const getByUUIDSQL = `
SELECT ` + bundleColumns + `
FROM bundles
WHERE uuid = $1`

// GetByUUID returns a bundle by its document uuid.
// Returns domain.ErrNotFound if no such bundle exists.
func (r *Repo) GetByUUID(ctx context.Context, bundleUUID string) (*domain.Bundle, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByUUIDSQL, bundleUUID)
	if err != nil {
		return nil, postgres.MapError(err, "bundle", bundleUUID)
	}
	defer rows.Close()

	b, err := scanOne(rows)
	if err != nil {
		return nil, postgres.MapError(err, "bundle", bundleUUID)
	}

	return b, nil
}

// List returns bundles ordered by release_date DESC. When activeOnly is set,
// inactive bundles are filtered out. Returns an empty slice (not nil) when
// nothing matches.
func (r *Repo) List(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error) {
	b := psql.Select(
		"uuid", "title", "description", "category", "release_date", "humor_count", "cover_img_list",
		"thumbnail_path", "language_code", "product_id", "preview_count", "preview_show_punchline", "active",
		"created_at", "updated_at",
	).
		From("bundles").
		OrderBy("release_date DESC")

	if activeOnly {
		b = b.Where(sq.Eq{"active": true})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bundle list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	defer rows.Close()

	result, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}

	return result, nil
}

const listByUUIDsSQL = `
SELECT ` + bundleColumns + `
FROM bundles
WHERE uuid = ANY($1::text[]) AND active`

// ListByUUIDs returns the active bundles whose uuids appear in the given list.
// Row order is whatever the store returns; callers re-sort into their own
// position order. Returns an empty slice (not nil) for an empty input.
func (r *Repo) ListByUUIDs(ctx context.Context, uuids []string) ([]*domain.Bundle, error) {
	if len(uuids) == 0 {
		return []*domain.Bundle{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUUIDsSQL, uuids)
	if err != nil {
		return nil, fmt.Errorf("list bundles by uuids: %w", err)
	}
	defer rows.Close()

	result, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("list bundles by uuids: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Bundle writes
// ---------------------------------------------------------------------------

const upsertSQL = `
INSERT INTO bundles (uuid, title, description, category, release_date, humor_count, cover_img_list,
	thumbnail_path, language_code, product_id, preview_count, preview_show_punchline, active,
	created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
ON CONFLICT (uuid) DO UPDATE SET
	title = EXCLUDED.title,
	description = EXCLUDED.description,
	category = EXCLUDED.category,
	release_date = EXCLUDED.release_date,
	humor_count = EXCLUDED.humor_count,
	cover_img_list = EXCLUDED.cover_img_list,
	thumbnail_path = EXCLUDED.thumbnail_path,
	language_code = EXCLUDED.language_code,
	product_id = EXCLUDED.product_id,
	preview_count = EXCLUDED.preview_count,
	preview_show_punchline = EXCLUDED.preview_show_punchline,
	active = EXCLUDED.active,
	updated_at = now()`

// Upsert inserts a bundle, replacing any existing document with the same uuid.
func (r *Repo) Upsert(ctx context.Context, b *domain.Bundle) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	coverList := b.CoverImgList
	if coverList == nil {
		coverList = []string{}
	}

	_, err := q.Exec(ctx, upsertSQL,
		b.UUID, b.Title, b.Description, string(b.Category), b.ReleaseDate, b.HumorCount, coverList,
		b.ThumbnailPath, b.LanguageCode, b.ProductID, b.PreviewCount, b.PreviewShowPunchline, b.Active,
	)
	if err != nil {
		return postgres.MapError(err, "bundle", b.UUID)
	}

	return nil
}

const updateSQL = `
UPDATE bundles SET
	title = $2,
	description = $3,
	release_date = $4,
	humor_count = $5,
	language_code = $6,
	product_id = $7,
	preview_count = $8,
	preview_show_punchline = $9,
	active = $10,
	updated_at = now()
WHERE uuid = $1`

// Update applies a partial merge to an existing bundle. uuid, category,
// cover_img_list and thumbnail_path are never touched by an update.
// Returns domain.ErrNotFound when the bundle does not exist.
func (r *Repo) Update(ctx context.Context, bundleUUID string, upd domain.BundleUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		bundleUUID, upd.Title, upd.Description, upd.ReleaseDate, upd.HumorCount,
		upd.LanguageCode, upd.ProductID, upd.PreviewCount, upd.PreviewShowPunchline, upd.Active,
	)
	if err != nil {
		return postgres.MapError(err, "bundle", bundleUUID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bundle %s: %w", bundleUUID, domain.ErrNotFound)
	}

	return nil
}

const updateCoverListSQL = `
UPDATE bundles SET cover_img_list = $2, updated_at = now() WHERE uuid = $1`

// UpdateCoverImgList replaces the whole cover image URL list of a bundle.
// Returns domain.ErrNotFound when the bundle does not exist.
func (r *Repo) UpdateCoverImgList(ctx context.Context, bundleUUID string, list []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if list == nil {
		list = []string{}
	}

	tag, err := q.Exec(ctx, updateCoverListSQL, bundleUUID, list)
	if err != nil {
		return postgres.MapError(err, "bundle", bundleUUID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bundle %s: %w", bundleUUID, domain.ErrNotFound)
	}

	return nil
}

const updateThumbnailSQL = `
UPDATE bundles SET thumbnail_path = $2, updated_at = now() WHERE uuid = $1`

// UpdateThumbnail sets (or clears, with nil) the bundle thumbnail URL.
// Returns domain.ErrNotFound when the bundle does not exist.
func (r *Repo) UpdateThumbnail(ctx context.Context, bundleUUID string, path *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateThumbnailSQL, bundleUUID, path)
	if err != nil {
		return postgres.MapError(err, "bundle", bundleUUID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bundle %s: %w", bundleUUID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Bundle sets
// ---------------------------------------------------------------------------

const listSetsSQL = `
SELECT uuid, bundle_list, idx, active
FROM bundle_sets
WHERE active
ORDER BY idx ASC`

// ListSets returns the active bundle sets in display order.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListSets(ctx context.Context) ([]*domain.BundleSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSetsSQL)
	if err != nil {
		return nil, fmt.Errorf("list bundle sets: %w", err)
	}
	defer rows.Close()

	var result []*domain.BundleSet
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("list bundle sets: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bundle sets: %w", err)
	}

	if result == nil {
		result = []*domain.BundleSet{}
	}

	return result, nil
}

const getSetSQL = `
SELECT uuid, bundle_list, idx, active
FROM bundle_sets
WHERE uuid = $1`

// GetSet returns a bundle set by its document uuid.
// Returns domain.ErrNotFound if no such set exists.
func (r *Repo) GetSet(ctx context.Context, setUUID string) (*domain.BundleSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getSetSQL, setUUID)
	if err != nil {
		return nil, postgres.MapError(err, "bundle_set", setUUID)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, postgres.MapError(err, "bundle_set", setUUID)
		}
		return nil, postgres.MapError(pgx.ErrNoRows, "bundle_set", setUUID)
	}

	s, err := scanSet(rows)
	if err != nil {
		return nil, postgres.MapError(err, "bundle_set", setUUID)
	}

	return s, rows.Err()
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanOne(rows pgx.Rows) (*domain.Bundle, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}

	b, err := scanBundle(rows)
	if err != nil {
		return nil, err
	}

	return b, rows.Err()
}

func scanAll(rows pgx.Rows) ([]*domain.Bundle, error) {
	var result []*domain.Bundle
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Bundle{}
	}

	return result, nil
}

func scanBundle(rows pgx.Rows) (*domain.Bundle, error) {
	var b domain.Bundle
	var category string

	err := rows.Scan(
		&b.UUID, &b.Title, &b.Description, &category, &b.ReleaseDate, &b.HumorCount, &b.CoverImgList,
		&b.ThumbnailPath, &b.LanguageCode, &b.ProductID, &b.PreviewCount, &b.PreviewShowPunchline, &b.Active,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Category = domain.HumorCategory(category)
	if b.CoverImgList == nil {
		b.CoverImgList = []string{}
	}

	return &b, nil
}

func scanSet(rows pgx.Rows) (*domain.BundleSet, error) {
	var s domain.BundleSet

	if err := rows.Scan(&s.UUID, &s.BundleList, &s.Index, &s.Active); err != nil {
		return nil, err
	}

	if s.BundleList == nil {
		s.BundleList = []string{}
	}

	return &s, nil
}
