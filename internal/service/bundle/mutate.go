package bundle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Add validates the raw payload, checks the admin password, and upserts the
// bundle document keyed by its uuid.
func (s *Service) Add(ctx context.Context, body map[string]any, password string) error {
	if verr := domain.ValidateBundlePayload(body); verr != nil {
		return verr
	}

	if err := s.gate.Verify(password); err != nil {
		return err
	}

	b := domain.BundleFromPayload(body)
	if err := s.bundles.Upsert(ctx, &b); err != nil {
		return fmt.Errorf("add bundle: %w", err)
	}

	s.log.InfoContext(ctx, "bundle added",
		slog.String("uuid", b.UUID),
		slog.String("category", string(b.Category)),
	)

	return nil
}

// Update validates the raw payload, checks the admin password, and merges the
// payload's updatable fields into an existing bundle. The target must exist.
func (s *Service) Update(ctx context.Context, body map[string]any, password string) error {
	if verr := domain.ValidateBundlePayload(body); verr != nil {
		return verr
	}

	if err := s.gate.Verify(password); err != nil {
		return err
	}

	uuid, _ := body["uuid"].(string)

	if _, err := s.bundles.GetByUUID(ctx, uuid); err != nil {
		return fmt.Errorf("update bundle: %w", err)
	}

	upd := domain.BundleUpdateFromPayload(body)
	if err := s.bundles.Update(ctx, uuid, upd); err != nil {
		return fmt.Errorf("update bundle: %w", err)
	}

	s.log.InfoContext(ctx, "bundle updated", slog.String("uuid", uuid))

	return nil
}
