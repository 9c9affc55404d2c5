package rest

import (
	"context"
	"log/slog"
	"net/http"
)

// appStateService defines the minimal interface needed by AppStateHandler.
type appStateService interface {
	ResetDone(ctx context.Context) (bool, error)
}

// AppStateHandler serves the app state check endpoint.
type AppStateHandler struct {
	svc appStateService
	log *slog.Logger
}

// NewAppStateHandler creates an AppStateHandler.
func NewAppStateHandler(svc appStateService, logger *slog.Logger) *AppStateHandler {
	return &AppStateHandler{svc: svc, log: logger.With("handler", "appstate")}
}

// Get handles GET /app-state. Reports whether today's content reset already ran.
func (h *AppStateHandler) Get(w http.ResponseWriter, r *http.Request) {
	done, err := h.svc.ResetDone(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"reset_done": done})
}
