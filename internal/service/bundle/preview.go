package bundle

import (
	"context"
	"fmt"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Preview returns the free preview slice of a bundle: the first preview_count
// member humors in index order. When the bundle hides punchlines, each
// punchline is replaced with the category's placeholder text. Preview items
// carry a synthetic 1-based index instead of their stored one.
func (s *Service) Preview(ctx context.Context, bundleUUID string) ([]*domain.Humor, error) {
	b, err := s.bundles.GetByUUID(ctx, bundleUUID)
	if err != nil {
		return nil, fmt.Errorf("preview bundle: %w", err)
	}

	members, err := s.humors.ListByBundle(ctx, bundleUUID)
	if err != nil {
		return nil, fmt.Errorf("preview bundle: %w", err)
	}

	count := b.PreviewCount
	if count > len(members) {
		count = len(members)
	}

	preview := make([]*domain.Humor, 0, count)
	for i := 0; i < count; i++ {
		item := *members[i]
		item.Index = i + 1

		if !b.PreviewShowPunchline {
			placeholder := item.Category.PreviewPlaceholder()
			item.Punchline = &placeholder
		}

		preview = append(preview, &item)
	}

	return preview, nil
}

// Download returns every member humor of a bundle in index order. The client
// gates this behind purchase verification; the API itself serves the content.
func (s *Service) Download(ctx context.Context, bundleUUID string) ([]*domain.Humor, error) {
	if _, err := s.bundles.GetByUUID(ctx, bundleUUID); err != nil {
		return nil, fmt.Errorf("download bundle: %w", err)
	}

	members, err := s.humors.ListByBundle(ctx, bundleUUID)
	if err != nil {
		return nil, fmt.Errorf("download bundle: %w", err)
	}

	return members, nil
}
