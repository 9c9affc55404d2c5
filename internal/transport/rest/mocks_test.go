package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
	bundlesvc "github.com/dailydoses/humor-backend/internal/service/bundle"
	humorsvc "github.com/dailydoses/humor-backend/internal/service/humor"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type humorServiceMock struct {
	ListFunc   func(ctx context.Context, input humorsvc.ListInput) ([]*domain.Humor, error)
	AddFunc    func(ctx context.Context, body map[string]any, password string) error
	UpdateFunc func(ctx context.Context, body map[string]any, password string) error
}

func (m *humorServiceMock) List(ctx context.Context, input humorsvc.ListInput) ([]*domain.Humor, error) {
	if m.ListFunc == nil {
		panic("humorServiceMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, input)
}

func (m *humorServiceMock) Add(ctx context.Context, body map[string]any, password string) error {
	if m.AddFunc == nil {
		panic("humorServiceMock.AddFunc: method is nil but was called")
	}
	return m.AddFunc(ctx, body, password)
}

func (m *humorServiceMock) Update(ctx context.Context, body map[string]any, password string) error {
	if m.UpdateFunc == nil {
		panic("humorServiceMock.UpdateFunc: method is nil but was called")
	}
	return m.UpdateFunc(ctx, body, password)
}

type bundleServiceMock struct {
	GetFunc             func(ctx context.Context, bundleUUID string) (*domain.Bundle, error)
	ListFunc            func(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error)
	ListSetsFunc        func(ctx context.Context) ([]*domain.BundleSet, error)
	ListSetBundlesFunc  func(ctx context.Context, setUUID string) ([]*domain.Bundle, error)
	AddFunc             func(ctx context.Context, body map[string]any, password string) error
	UpdateFunc          func(ctx context.Context, body map[string]any, password string) error
	PreviewFunc         func(ctx context.Context, bundleUUID string) ([]*domain.Humor, error)
	DownloadFunc        func(ctx context.Context, bundleUUID string) ([]*domain.Humor, error)
	UploadCoverFunc     func(ctx context.Context, input bundlesvc.CoverUploadInput) ([]string, error)
	UploadThumbnailFunc func(ctx context.Context, input bundlesvc.ThumbnailUploadInput) (string, error)
}

func (m *bundleServiceMock) Get(ctx context.Context, bundleUUID string) (*domain.Bundle, error) {
	if m.GetFunc == nil {
		panic("bundleServiceMock.GetFunc: method is nil but was called")
	}
	return m.GetFunc(ctx, bundleUUID)
}

func (m *bundleServiceMock) List(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error) {
	if m.ListFunc == nil {
		panic("bundleServiceMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, activeOnly)
}

func (m *bundleServiceMock) ListSets(ctx context.Context) ([]*domain.BundleSet, error) {
	if m.ListSetsFunc == nil {
		panic("bundleServiceMock.ListSetsFunc: method is nil but was called")
	}
	return m.ListSetsFunc(ctx)
}

func (m *bundleServiceMock) ListSetBundles(ctx context.Context, setUUID string) ([]*domain.Bundle, error) {
	if m.ListSetBundlesFunc == nil {
		panic("bundleServiceMock.ListSetBundlesFunc: method is nil but was called")
	}
	return m.ListSetBundlesFunc(ctx, setUUID)
}

func (m *bundleServiceMock) Add(ctx context.Context, body map[string]any, password string) error {
	if m.AddFunc == nil {
		panic("bundleServiceMock.AddFunc: method is nil but was called")
	}
	return m.AddFunc(ctx, body, password)
}

func (m *bundleServiceMock) Update(ctx context.Context, body map[string]any, password string) error {
	if m.UpdateFunc == nil {
		panic("bundleServiceMock.UpdateFunc: method is nil but was called")
	}
	return m.UpdateFunc(ctx, body, password)
}

func (m *bundleServiceMock) Preview(ctx context.Context, bundleUUID string) ([]*domain.Humor, error) {
	if m.PreviewFunc == nil {
		panic("bundleServiceMock.PreviewFunc: method is nil but was called")
	}
	return m.PreviewFunc(ctx, bundleUUID)
}

func (m *bundleServiceMock) Download(ctx context.Context, bundleUUID string) ([]*domain.Humor, error) {
	if m.DownloadFunc == nil {
		panic("bundleServiceMock.DownloadFunc: method is nil but was called")
	}
	return m.DownloadFunc(ctx, bundleUUID)
}

func (m *bundleServiceMock) UploadCover(ctx context.Context, input bundlesvc.CoverUploadInput) ([]string, error) {
	if m.UploadCoverFunc == nil {
		panic("bundleServiceMock.UploadCoverFunc: method is nil but was called")
	}
	return m.UploadCoverFunc(ctx, input)
}

func (m *bundleServiceMock) UploadThumbnail(ctx context.Context, input bundlesvc.ThumbnailUploadInput) (string, error) {
	if m.UploadThumbnailFunc == nil {
		panic("bundleServiceMock.UploadThumbnailFunc: method is nil but was called")
	}
	return m.UploadThumbnailFunc(ctx, input)
}

type submissionServiceMock struct {
	CreateFunc func(ctx context.Context, body map[string]any) (int64, error)
	ListFunc   func(ctx context.Context, limit int, password string) ([]*domain.UserSubmission, error)
}

func (m *submissionServiceMock) Create(ctx context.Context, body map[string]any) (int64, error) {
	if m.CreateFunc == nil {
		panic("submissionServiceMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, body)
}

func (m *submissionServiceMock) List(ctx context.Context, limit int, password string) ([]*domain.UserSubmission, error) {
	if m.ListFunc == nil {
		panic("submissionServiceMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, limit, password)
}

type appStateServiceMock struct {
	ResetDoneFunc func(ctx context.Context) (bool, error)
}

func (m *appStateServiceMock) ResetDone(ctx context.Context) (bool, error) {
	if m.ResetDoneFunc == nil {
		panic("appStateServiceMock.ResetDoneFunc: method is nil but was called")
	}
	return m.ResetDoneFunc(ctx)
}
