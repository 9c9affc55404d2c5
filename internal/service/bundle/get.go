package bundle

import (
	"context"
	"fmt"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Get returns a bundle by uuid. Returns domain.ErrNotFound if absent.
func (s *Service) Get(ctx context.Context, bundleUUID string) (*domain.Bundle, error) {
	b, err := s.bundles.GetByUUID(ctx, bundleUUID)
	if err != nil {
		return nil, fmt.Errorf("get bundle: %w", err)
	}
	return b, nil
}

// List returns the bundle catalog, newest release first.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error) {
	bundles, err := s.bundles.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	return bundles, nil
}
