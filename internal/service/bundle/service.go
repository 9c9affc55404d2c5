// Package bundle implements bundle catalog operations: detail and set
// listings, paid-content preview and download, the password-gated bundle
// mutations, and the cover image upload pipeline.
package bundle

import (
	"context"
	"io"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
)

type bundleRepo interface {
	GetByUUID(ctx context.Context, bundleUUID string) (*domain.Bundle, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error)
	ListByUUIDs(ctx context.Context, uuids []string) ([]*domain.Bundle, error)
	Upsert(ctx context.Context, b *domain.Bundle) error
	Update(ctx context.Context, bundleUUID string, upd domain.BundleUpdate) error
	UpdateCoverImgList(ctx context.Context, bundleUUID string, list []string) error
	UpdateThumbnail(ctx context.Context, bundleUUID string, path *string) error
	ListSets(ctx context.Context) ([]*domain.BundleSet, error)
	GetSet(ctx context.Context, setUUID string) (*domain.BundleSet, error)
}

type humorRepo interface {
	ListByBundle(ctx context.Context, bundleUUID string) ([]*domain.Humor, error)
}

type adminGate interface {
	Verify(candidate string) error
}

type objectStore interface {
	Save(ctx context.Context, r io.Reader, ext string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides bundle catalog operations.
type Service struct {
	bundles bundleRepo
	humors  humorRepo
	gate    adminGate
	store   objectStore
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new bundle service.
func NewService(
	log *slog.Logger,
	bundles bundleRepo,
	humors humorRepo,
	gate adminGate,
	store objectStore,
	tx txManager,
) *Service {
	return &Service{
		bundles: bundles,
		humors:  humors,
		gate:    gate,
		store:   store,
		tx:      tx,
		log:     log.With("service", "bundle"),
	}
}
