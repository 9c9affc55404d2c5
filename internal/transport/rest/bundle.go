package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dailydoses/humor-backend/internal/domain"
	bundlesvc "github.com/dailydoses/humor-backend/internal/service/bundle"
)

// bundleService defines the minimal interface needed by BundleHandler.
type bundleService interface {
	Get(ctx context.Context, bundleUUID string) (*domain.Bundle, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error)
	ListSets(ctx context.Context) ([]*domain.BundleSet, error)
	ListSetBundles(ctx context.Context, setUUID string) ([]*domain.Bundle, error)
	Add(ctx context.Context, body map[string]any, password string) error
	Update(ctx context.Context, body map[string]any, password string) error
	Preview(ctx context.Context, bundleUUID string) ([]*domain.Humor, error)
	Download(ctx context.Context, bundleUUID string) ([]*domain.Humor, error)
	UploadCover(ctx context.Context, input bundlesvc.CoverUploadInput) ([]string, error)
	UploadThumbnail(ctx context.Context, input bundlesvc.ThumbnailUploadInput) (string, error)
}

// BundleHandler serves bundle and bundle set REST endpoints.
type BundleHandler struct {
	svc         bundleService
	log         *slog.Logger
	maxUploadMB int64
}

// NewBundleHandler creates a BundleHandler.
func NewBundleHandler(svc bundleService, logger *slog.Logger, maxUploadMB int64) *BundleHandler {
	return &BundleHandler{svc: svc, log: logger.With("handler", "bundle"), maxUploadMB: maxUploadMB}
}

// Get handles GET /bundles/{uuid}.
func (h *BundleHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), r.PathValue("uuid"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// List handles GET /bundles. Inactive bundles are included only with ?active=false.
func (h *BundleHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if v := r.URL.Query().Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "active must be a boolean")
			return
		}
		activeOnly = parsed
	}

	bundles, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bundleList": bundles})
}

// ListSets handles GET /bundle-sets.
func (h *BundleHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.svc.ListSets(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bundleSetList": sets})
}

// ListSetBundles handles GET /bundle-sets/{uuid}/bundles.
func (h *BundleHandler) ListSetBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.svc.ListSetBundles(r.Context(), r.PathValue("uuid"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bundleList": bundles})
}

// Add handles POST /bundles.
func (h *BundleHandler) Add(w http.ResponseWriter, r *http.Request) {
	body, password, ok := decodeAdminBody(w, r)
	if !ok {
		return
	}

	if err := h.svc.Add(r.Context(), body, password); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "bundle added"})
}

// Update handles PUT /bundles.
func (h *BundleHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, password, ok := decodeAdminBody(w, r)
	if !ok {
		return
	}

	if err := h.svc.Update(r.Context(), body, password); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "bundle updated"})
}

// Preview handles GET /bundles/{uuid}/preview.
func (h *BundleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Preview(r.Context(), r.PathValue("uuid"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"humorList": items})
}

// Download handles GET /bundles/{uuid}/humors.
func (h *BundleHandler) Download(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Download(r.Context(), r.PathValue("uuid"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"humorList": items})
}
