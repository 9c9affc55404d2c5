package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/dailydoses/humor-backend/internal/domain"
	bundlesvc "github.com/dailydoses/humor-backend/internal/service/bundle"
)

// UploadCover handles POST /bundles/cover (multipart). Fields: bundle_uuid,
// op (add|replace|delete), index, password, plus one "file" part. The file
// part is optional for op=delete.
func (h *BundleHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil || r.ContentLength == 0 {
		writeError(w, http.StatusBadRequest, "missing request body")
		return
	}
	if err := r.ParseMultipartForm(h.maxUploadMB << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := bundlesvc.CoverUploadInput{
		BundleUUID: r.FormValue("bundle_uuid"),
		Op:         domain.CoverOp(r.FormValue("op")),
		Password:   r.FormValue("password"),
	}
	if v := r.FormValue("index"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "index must be an integer")
			return
		}
		input.Index = idx
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		input.File = file
		input.Ext = path.Ext(header.Filename)
	case errors.Is(err, http.ErrMissingFile):
		// Service validation rejects the absence for add/replace.
	default:
		writeError(w, http.StatusBadRequest, "invalid file part")
		return
	}

	urls, err := h.svc.UploadCover(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"coverImgList": urls})
}

type coverRemoveRequest struct {
	BundleUUID string `json:"bundle_uuid"`
	Index      int    `json:"index"`
	Password   string `json:"password"`
}

// RemoveCover handles DELETE /bundles/cover. It is the JSON twin of op=delete
// for clients that cannot send multipart bodies with DELETE.
func (h *BundleHandler) RemoveCover(w http.ResponseWriter, r *http.Request) {
	var req coverRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	urls, err := h.svc.UploadCover(r.Context(), bundlesvc.CoverUploadInput{
		BundleUUID: req.BundleUUID,
		Op:         domain.CoverOpDelete,
		Index:      req.Index,
		Password:   req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"coverImgList": urls})
}

// UploadThumbnail handles POST /bundles/thumbnail (multipart). Fields:
// bundle_uuid, password, plus one "file" part.
func (h *BundleHandler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil || r.ContentLength == 0 {
		writeError(w, http.StatusBadRequest, "missing request body")
		return
	}
	if err := r.ParseMultipartForm(h.maxUploadMB << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := bundlesvc.ThumbnailUploadInput{
		BundleUUID: r.FormValue("bundle_uuid"),
		Password:   r.FormValue("password"),
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part")
		return
	}
	defer file.Close()
	input.File = file
	input.Ext = path.Ext(header.Filename)

	url, err := h.svc.UploadThumbnail(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"thumbnailPath": url})
}
