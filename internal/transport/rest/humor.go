package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dailydoses/humor-backend/internal/domain"
	humorsvc "github.com/dailydoses/humor-backend/internal/service/humor"
)

// humorService defines the minimal interface needed by HumorHandler.
type humorService interface {
	List(ctx context.Context, input humorsvc.ListInput) ([]*domain.Humor, error)
	Add(ctx context.Context, body map[string]any, password string) error
	Update(ctx context.Context, body map[string]any, password string) error
}

// HumorHandler serves humor REST endpoints.
type HumorHandler struct {
	svc humorService
	log *slog.Logger
}

// NewHumorHandler creates a HumorHandler.
func NewHumorHandler(svc humorService, logger *slog.Logger) *HumorHandler {
	return &HumorHandler{svc: svc, log: logger.With("handler", "humor")}
}

// List handles GET /humors. Filters: ?category=&date=&active=.
func (h *HumorHandler) List(w http.ResponseWriter, r *http.Request) {
	var input humorsvc.ListInput

	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		input.Category = &v
	}
	if v := q.Get("date"); v != "" {
		input.Date = &v
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "active must be a boolean")
			return
		}
		input.Active = &active
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"humorList": items})
}

// Add handles POST /humors.
func (h *HumorHandler) Add(w http.ResponseWriter, r *http.Request) {
	body, password, ok := decodeAdminBody(w, r)
	if !ok {
		return
	}

	if err := h.svc.Add(r.Context(), body, password); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "humor added"})
}

// Update handles PUT /humors.
func (h *HumorHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, password, ok := decodeAdminBody(w, r)
	if !ok {
		return
	}

	if err := h.svc.Update(r.Context(), body, password); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "humor updated"})
}

// decodeAdminBody decodes a JSON object body and extracts the admin password.
// The password travels in the body's "password" field; the X-Admin-Password
// header is accepted as a fallback so payloads can stay clean.
func decodeAdminBody(w http.ResponseWriter, r *http.Request) (map[string]any, string, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, "", false
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "missing request body")
		return nil, "", false
	}

	password, _ := body["password"].(string)
	delete(body, "password")
	if password == "" {
		password = r.Header.Get("X-Admin-Password")
	}

	return body, password, true
}
