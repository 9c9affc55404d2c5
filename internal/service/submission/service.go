// Package submission implements the append-only user humor submission flow.
package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
	"github.com/dailydoses/humor-backend/pkg/dateutil"
)

type submissionRepo interface {
	Create(ctx context.Context, s *domain.UserSubmission) (int64, error)
	List(ctx context.Context, limit int) ([]*domain.UserSubmission, error)
}

type adminGate interface {
	Verify(candidate string) error
}

// defaultListLimit bounds the review feed when the caller gives no limit.
const defaultListLimit = 100

// Service provides user submission operations.
type Service struct {
	submissions submissionRepo
	gate        adminGate
	log         *slog.Logger
}

// NewService creates a new submission service.
func NewService(log *slog.Logger, submissions submissionRepo, gate adminGate) *Service {
	return &Service{
		submissions: submissions,
		gate:        gate,
		log:         log.With("service", "submission"),
	}
}

// Create validates the raw payload and appends the submission. The submission
// date is assigned here, never taken from the client.
func (s *Service) Create(ctx context.Context, body map[string]any) (int64, error) {
	if verr := domain.ValidateSubmissionPayload(body); verr != nil {
		return 0, verr
	}

	sub := domain.SubmissionFromPayload(body)
	sub.SubmissionDate = dateutil.Today()

	id, err := s.submissions.Create(ctx, &sub)
	if err != nil {
		return 0, fmt.Errorf("create submission: %w", err)
	}

	s.log.InfoContext(ctx, "submission received",
		slog.Int64("id", id),
		slog.String("humor_uuid", sub.HumorUUID),
	)

	return id, nil
}

// List returns the most recent submissions for admin review, newest first.
// A non-positive limit falls back to the default.
func (s *Service) List(ctx context.Context, limit int, password string) ([]*domain.UserSubmission, error) {
	if err := s.gate.Verify(password); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	items, err := s.submissions.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return items, nil
}
