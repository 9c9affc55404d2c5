package bundle

import (
	"context"
	"fmt"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// ListSets returns the active curated bundle sets in display order.
func (s *Service) ListSets(ctx context.Context) ([]*domain.BundleSet, error) {
	sets, err := s.bundles.ListSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bundle sets: %w", err)
	}
	return sets, nil
}

// ListSetBundles resolves a set's members and returns them in the set's own
// bundle_list order. The store returns rows in arbitrary order, so the result
// is re-sorted by list position; uuids that resolve to nothing (deleted or
// deactivated bundles) are simply skipped.
func (s *Service) ListSetBundles(ctx context.Context, setUUID string) ([]*domain.Bundle, error) {
	set, err := s.bundles.GetSet(ctx, setUUID)
	if err != nil {
		return nil, fmt.Errorf("get bundle set: %w", err)
	}

	fetched, err := s.bundles.ListByUUIDs(ctx, set.BundleList)
	if err != nil {
		return nil, fmt.Errorf("list set bundles: %w", err)
	}

	byUUID := make(map[string]*domain.Bundle, len(fetched))
	for _, b := range fetched {
		byUUID[b.UUID] = b
	}

	ordered := make([]*domain.Bundle, 0, len(set.BundleList))
	for _, uuid := range set.BundleList {
		if b, ok := byUUID[uuid]; ok {
			ordered = append(ordered, b)
		}
	}

	return ordered, nil
}
