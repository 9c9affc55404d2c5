package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// SeedHumor inserts a humor row directly and returns it. Callers override
// fields through the mutate func before the insert.
func SeedHumor(t *testing.T, pool *pgxpool.Pool, mutate func(*domain.Humor)) *domain.Humor {
	t.Helper()
	ctx := context.Background()

	h := &domain.Humor{
		UUID:        uuid.NewString(),
		Category:    domain.CategoryDadJokes,
		Context:     "Why do programmers prefer dark mode?",
		Punchline:   strPtr("Because light attracts bugs."),
		ContextList: []string{},
		Sender:      "admin",
		Source:      "seed",
		ReleaseDate: "2024-01-01",
		CreatedDate: "2024-01-01",
		Index:       0,
		Active:      true,
	}
	if mutate != nil {
		mutate(h)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO humors (uuid, category, context, punchline, context_list, sender, source, author,
			release_date, created_date, idx, active, bundle_uuid, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())`,
		h.UUID, string(h.Category), h.Context, h.Punchline, h.ContextList, h.Sender, h.Source, h.Author,
		h.ReleaseDate, h.CreatedDate, h.Index, h.Active, h.BundleUUID,
	)
	if err != nil {
		t.Fatalf("seed humor: %v", err)
	}

	return h
}

// SeedBundle inserts a bundle row directly and returns it.
func SeedBundle(t *testing.T, pool *pgxpool.Pool, mutate func(*domain.Bundle)) *domain.Bundle {
	t.Helper()
	ctx := context.Background()

	b := &domain.Bundle{
		UUID:                 uuid.NewString(),
		Title:                "Seed Bundle",
		Description:          "A bundle seeded for tests",
		Category:             domain.CategoryDadJokes,
		ReleaseDate:          "2024-01-01",
		HumorCount:           0,
		CoverImgList:         []string{},
		LanguageCode:         "en",
		ProductID:            "bundle.seed",
		PreviewCount:         3,
		PreviewShowPunchline: false,
		Active:               true,
	}
	if mutate != nil {
		mutate(b)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bundles (uuid, title, description, category, release_date, humor_count, cover_img_list,
			thumbnail_path, language_code, product_id, preview_count, preview_show_punchline, active,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())`,
		b.UUID, b.Title, b.Description, string(b.Category), b.ReleaseDate, b.HumorCount, b.CoverImgList,
		b.ThumbnailPath, b.LanguageCode, b.ProductID, b.PreviewCount, b.PreviewShowPunchline, b.Active,
	)
	if err != nil {
		t.Fatalf("seed bundle: %v", err)
	}

	return b
}

// SeedBundleSet inserts a bundle_sets row directly and returns it.
func SeedBundleSet(t *testing.T, pool *pgxpool.Pool, bundleList []string, idx int) *domain.BundleSet {
	t.Helper()
	ctx := context.Background()

	s := &domain.BundleSet{
		UUID:       uuid.NewString(),
		BundleList: bundleList,
		Index:      idx,
		Active:     true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bundle_sets (uuid, bundle_list, idx, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())`,
		s.UUID, s.BundleList, s.Index, s.Active,
	)
	if err != nil {
		t.Fatalf("seed bundle set: %v", err)
	}

	return s
}

func strPtr(s string) *string { return &s }
