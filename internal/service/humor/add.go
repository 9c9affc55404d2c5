package humor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Add validates the raw payload, checks the admin password, and upserts the
// humor document keyed by its uuid. An existing document with the same uuid
// is silently replaced.
func (s *Service) Add(ctx context.Context, body map[string]any, password string) error {
	if verr := domain.ValidateHumorPayload(body); verr != nil {
		return verr
	}

	if err := s.gate.Verify(password); err != nil {
		return err
	}

	h := domain.HumorFromPayload(body)
	if err := s.humors.Upsert(ctx, &h); err != nil {
		return fmt.Errorf("add humor: %w", err)
	}

	s.log.InfoContext(ctx, "humor added",
		slog.String("uuid", h.UUID),
		slog.String("category", string(h.Category)),
		slog.String("date", h.ReleaseDate),
	)

	return nil
}
