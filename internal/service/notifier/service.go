// Package notifier implements the daily push notification job. An external
// scheduler runs it once at midnight UTC via cmd/notifier.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
	"github.com/dailydoses/humor-backend/internal/notify"
	"github.com/dailydoses/humor-backend/pkg/dateutil"
)

// pushTitle is the fixed notification title; the body carries the joke.
const pushTitle = "Today's Humor"

type humorRepo interface {
	FirstOfDay(ctx context.Context, category domain.HumorCategory, date string) (*domain.Humor, error)
}

type appState interface {
	MarkReset(ctx context.Context, date string) error
}

type pushPublisher interface {
	PublishPush(ctx context.Context, msg *notify.PushMessage) error
}

// Service runs the daily notification job.
type Service struct {
	humors   humorRepo
	states   appState
	pub      pushPublisher
	category domain.HumorCategory
	log      *slog.Logger
}

// NewService creates a new notifier service for the configured category.
func NewService(
	log *slog.Logger,
	humors humorRepo,
	states appState,
	pub pushPublisher,
	category domain.HumorCategory,
) *Service {
	return &Service{
		humors:   humors,
		states:   states,
		pub:      pub,
		category: category,
		log:      log.With("service", "notifier"),
	}
}

// Run executes one daily cycle: record today's reset, find the day's lead
// humor, and publish it. A day without a lead item is a quiet no-op. Publish
// failures are logged and swallowed — there is no caller to surface them to
// and the job is not retried.
func (s *Service) Run(ctx context.Context) error {
	today := dateutil.Today()

	if err := s.states.MarkReset(ctx, today); err != nil {
		return fmt.Errorf("record daily reset: %w", err)
	}

	lead, err := s.humors.FirstOfDay(ctx, s.category, today)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.InfoContext(ctx, "no lead humor released today, skipping push",
			slog.String("category", string(s.category)),
			slog.String("date", today),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("find lead humor: %w", err)
	}

	msg := &notify.PushMessage{
		Title: pushTitle,
		Body:  lead.Context,
		Date:  today,
	}

	if err := s.pub.PublishPush(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "push publish failed",
			slog.String("category", string(s.category)),
			slog.String("date", today),
			slog.String("error", err.Error()),
		)
		return nil
	}

	s.log.InfoContext(ctx, "daily push published",
		slog.String("uuid", lead.UUID),
		slog.String("category", string(s.category)),
		slog.String("date", today),
	)

	return nil
}
