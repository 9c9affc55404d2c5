package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailydoses/humor-backend/internal/domain"
)

func TestSubmissionCreate_OK(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	svc := &submissionServiceMock{
		CreateFunc: func(_ context.Context, body map[string]any) (int64, error) {
			gotBody = body
			return 42, nil
		},
	}
	h := NewSubmissionHandler(svc, testLogger())

	body := `{"nickname":"funnyguy","context":"why did the gopher...","app_uuid":"a1","humor_uuid":"h1","subscription_type":"free"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submissionId":42`)
	assert.Equal(t, "funnyguy", gotBody["nickname"])
}

func TestSubmissionCreate_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := NewSubmissionHandler(&submissionServiceMock{}, testLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader("nope")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmissionList_PasswordFromHeader(t *testing.T) {
	t.Parallel()

	var gotLimit int
	var gotPassword string
	svc := &submissionServiceMock{
		ListFunc: func(_ context.Context, limit int, password string) ([]*domain.UserSubmission, error) {
			gotLimit = limit
			gotPassword = password
			return []*domain.UserSubmission{{ID: 7, Nickname: "jokester"}}, nil
		},
	}
	h := NewSubmissionHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/submissions?limit=5", nil)
	req.Header.Set("X-Admin-Password", "pw")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, "pw", gotPassword)
	assert.Contains(t, rec.Body.String(), `"submissionList"`)
}

func TestSubmissionList_BadLimit(t *testing.T) {
	t.Parallel()

	h := NewSubmissionHandler(&submissionServiceMock{}, testLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/submissions?limit=lots", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmissionList_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := &submissionServiceMock{
		ListFunc: func(_ context.Context, _ int, _ string) ([]*domain.UserSubmission, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewSubmissionHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/submissions", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmissionCreate_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &submissionServiceMock{
		CreateFunc: func(_ context.Context, _ map[string]any) (int64, error) {
			return 0, domain.NewValidationError("nickname", "required")
		},
	}
	h := NewSubmissionHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(`{"context":"x"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nickname")
}
