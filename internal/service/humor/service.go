// Package humor implements daily humor content operations: filtered listing
// plus the password-gated add and update mutations.
package humor

import (
	"context"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
)

type humorRepo interface {
	List(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error)
	Upsert(ctx context.Context, h *domain.Humor) error
	Update(ctx context.Context, humorUUID string, upd domain.HumorUpdate) error
	Exists(ctx context.Context, humorUUID string) (bool, error)
}

type adminGate interface {
	Verify(candidate string) error
}

// Service provides humor content operations.
type Service struct {
	humors humorRepo
	gate   adminGate
	log    *slog.Logger
}

// NewService creates a new humor service.
func NewService(log *slog.Logger, humors humorRepo, gate adminGate) *Service {
	return &Service{
		humors: humors,
		gate:   gate,
		log:    log.With("service", "humor"),
	}
}
