package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailydoses/humor-backend/internal/domain"
)

func getWithUUID(target, uuid string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.SetPathValue("uuid", uuid)
	return req
}

func TestBundleGet_OK(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		GetFunc: func(_ context.Context, bundleUUID string) (*domain.Bundle, error) {
			return &domain.Bundle{UUID: bundleUUID, Title: "Riddle Pack"}, nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.Get(rec, getWithUUID("/bundles/b1", "b1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Bundle
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "b1", resp.UUID)
	assert.Equal(t, "Riddle Pack", resp.Title)
}

func TestBundleGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		GetFunc: func(_ context.Context, _ string) (*domain.Bundle, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.Get(rec, getWithUUID("/bundles/missing", "missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBundleList_DefaultsToActiveOnly(t *testing.T) {
	t.Parallel()

	var gotActiveOnly bool
	svc := &bundleServiceMock{
		ListFunc: func(_ context.Context, activeOnly bool) ([]*domain.Bundle, error) {
			gotActiveOnly = activeOnly
			return []*domain.Bundle{{UUID: "b1"}}, nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/bundles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotActiveOnly)
	assert.Contains(t, rec.Body.String(), `"bundleList"`)
}

func TestBundleList_ActiveFalseIncludesAll(t *testing.T) {
	t.Parallel()

	var gotActiveOnly bool
	svc := &bundleServiceMock{
		ListFunc: func(_ context.Context, activeOnly bool) ([]*domain.Bundle, error) {
			gotActiveOnly = activeOnly
			return []*domain.Bundle{}, nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/bundles?active=false", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotActiveOnly)
}

func TestBundleListSets_Envelope(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		ListSetsFunc: func(_ context.Context) ([]*domain.BundleSet, error) {
			return []*domain.BundleSet{{UUID: "s1", BundleList: []string{"b1", "b2"}}}, nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.ListSets(rec, httptest.NewRequest(http.MethodGet, "/bundle-sets", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BundleSetList []*domain.BundleSet `json:"bundleSetList"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.BundleSetList, 1)
	assert.Equal(t, []string{"b1", "b2"}, resp.BundleSetList[0].BundleList)
}

func TestBundleListSetBundles_Envelope(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		ListSetBundlesFunc: func(_ context.Context, setUUID string) ([]*domain.Bundle, error) {
			assert.Equal(t, "s1", setUUID)
			return []*domain.Bundle{{UUID: "b2"}, {UUID: "b1"}}, nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.ListSetBundles(rec, getWithUUID("/bundle-sets/s1/bundles", "s1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bundleList"`)
}

func TestBundlePreview_Envelope(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		PreviewFunc: func(_ context.Context, bundleUUID string) ([]*domain.Humor, error) {
			assert.Equal(t, "b1", bundleUUID)
			return []*domain.Humor{{UUID: "h1", Index: 1}}, nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.Preview(rec, getWithUUID("/bundles/b1/preview", "b1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"humorList"`)
}

func TestBundleDownload_NotFound(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		DownloadFunc: func(_ context.Context, _ string) ([]*domain.Humor, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.Download(rec, getWithUUID("/bundles/missing/humors", "missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBundleAdd_Created(t *testing.T) {
	t.Parallel()

	var gotPassword string
	svc := &bundleServiceMock{
		AddFunc: func(_ context.Context, body map[string]any, password string) error {
			gotPassword = password
			assert.Equal(t, "b1", body["uuid"])
			return nil
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	body := `{"uuid":"b1","title":"Pack","password":"pw"}`
	rec := httptest.NewRecorder()
	h.Add(rec, httptest.NewRequest(http.MethodPost, "/bundles", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pw", gotPassword)
}

func TestBundleUpdate_ValidationErrorSurfaced(t *testing.T) {
	t.Parallel()

	svc := &bundleServiceMock{
		UpdateFunc: func(_ context.Context, _ map[string]any, _ string) error {
			return domain.NewValidationError("title", "required")
		},
	}
	h := NewBundleHandler(svc, testLogger(), 16)

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/bundles", strings.NewReader(`{"uuid":"b1"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}
