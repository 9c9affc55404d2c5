package humor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Update validates the raw payload, checks the admin password, and merges the
// payload's updatable fields into an existing humor document. Unlike Add,
// the target document must already exist.
func (s *Service) Update(ctx context.Context, body map[string]any, password string) error {
	if verr := domain.ValidateHumorPayload(body); verr != nil {
		return verr
	}

	if err := s.gate.Verify(password); err != nil {
		return err
	}

	uuid, _ := body["uuid"].(string)

	exists, err := s.humors.Exists(ctx, uuid)
	if err != nil {
		return fmt.Errorf("update humor: %w", err)
	}
	if !exists {
		return fmt.Errorf("humor %s: %w", uuid, domain.ErrNotFound)
	}

	upd := domain.HumorUpdateFromPayload(body)
	if err := s.humors.Update(ctx, uuid, upd); err != nil {
		return fmt.Errorf("update humor: %w", err)
	}

	s.log.InfoContext(ctx, "humor updated", slog.String("uuid", uuid))

	return nil
}
