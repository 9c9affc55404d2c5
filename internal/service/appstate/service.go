// Package appstate answers the client's daily reset check.
package appstate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydoses/humor-backend/pkg/dateutil"
)

type appStateRepo interface {
	LastResetDate(ctx context.Context) (string, error)
	SetLastResetDate(ctx context.Context, date string) error
}

// Service provides app state operations.
type Service struct {
	states appStateRepo
	log    *slog.Logger
}

// NewService creates a new app state service.
func NewService(log *slog.Logger, states appStateRepo) *Service {
	return &Service{
		states: states,
		log:    log.With("service", "appstate"),
	}
}

// ResetDone reports whether today's daily reset has already run: the stored
// last reset date equals today (UTC). A never-reset store reads as false.
func (s *Service) ResetDone(ctx context.Context) (bool, error) {
	last, err := s.states.LastResetDate(ctx)
	if err != nil {
		return false, fmt.Errorf("read last reset date: %w", err)
	}

	return last == dateutil.Today(), nil
}

// MarkReset records that the daily reset ran on the given date.
func (s *Service) MarkReset(ctx context.Context, date string) error {
	if err := s.states.SetLastResetDate(ctx, date); err != nil {
		return fmt.Errorf("mark reset: %w", err)
	}

	s.log.InfoContext(ctx, "daily reset recorded", slog.String("date", date))
	return nil
}
