package humor

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dailydoses/humor-backend/internal/domain"
	"github.com/dailydoses/humor-backend/pkg/dateutil"
)

// ListInput holds the optional query filters for a daily humor listing.
type ListInput struct {
	Category *string
	Date     *string
	Active   *bool
}

// Validate checks filter values; absent filters are always valid.
func (i ListInput) Validate() error {
	if i.Category != nil && !domain.HumorCategory(*i.Category).IsValid() {
		return domain.NewValidationError("category", "unknown category")
	}
	if i.Date != nil && !domain.IsDateString(*i.Date) {
		return domain.NewValidationError("date", "must be yyyy-mm-dd")
	}
	return nil
}

// List returns humor items matching the filters, ordered by release_date DESC,
// index ASC. Without a category filter every category is read concurrently and
// the results merged; one failed sub-read fails the whole listing. is_new is
// set on items released today (UTC).
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Humor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.HumorFilter{
		Date:   input.Date,
		Active: input.Active,
	}

	var result []*domain.Humor

	if input.Category != nil {
		cat := domain.HumorCategory(*input.Category)
		filter.Category = &cat

		var err error
		result, err = s.humors.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list humors: %w", err)
		}
	} else {
		var err error
		result, err = s.listAllCategories(ctx, filter)
		if err != nil {
			return nil, err
		}
	}

	today := dateutil.Today()
	for _, h := range result {
		h.IsNew = h.ReleaseDate == today
	}

	return result, nil
}

// listAllCategories fans out one read per category and merges the results back
// into the global ordering.
func (s *Service) listAllCategories(ctx context.Context, filter domain.HumorFilter) ([]*domain.Humor, error) {
	perCategory := make([][]*domain.Humor, len(domain.Categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range domain.Categories {
		f := filter
		f.Category = &domain.Categories[i]

		g.Go(func() error {
			items, err := s.humors.List(gctx, f)
			if err != nil {
				return fmt.Errorf("list %s humors: %w", cat, err)
			}
			perCategory[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []*domain.Humor
	for _, items := range perCategory {
		merged = append(merged, items...)
	}
	if merged == nil {
		merged = []*domain.Humor{}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].ReleaseDate != merged[b].ReleaseDate {
			return merged[a].ReleaseDate > merged[b].ReleaseDate
		}
		return merged[a].Index < merged[b].Index
	})

	return merged, nil
}
