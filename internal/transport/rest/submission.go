package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// submissionService defines the minimal interface needed by SubmissionHandler.
type submissionService interface {
	Create(ctx context.Context, body map[string]any) (int64, error)
	List(ctx context.Context, limit int, password string) ([]*domain.UserSubmission, error)
}

// SubmissionHandler serves user submission endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

// Create handles POST /submissions.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "missing request body")
		return
	}

	id, err := h.svc.Create(r.Context(), body)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"submissionId": id})
}

// List handles GET /submissions. Admin-only: the password travels in the
// X-Admin-Password header since GET requests have no body.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	items, err := h.svc.List(r.Context(), limit, r.Header.Get("X-Admin-Password"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"submissionList": items})
}
