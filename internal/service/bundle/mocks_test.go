package bundle

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/dailydoses/humor-backend/internal/domain"
)

var _ bundleRepo = &bundleRepoMock{}

type bundleRepoMock struct {
	GetByUUIDFunc          func(ctx context.Context, bundleUUID string) (*domain.Bundle, error)
	ListFunc               func(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error)
	ListByUUIDsFunc        func(ctx context.Context, uuids []string) ([]*domain.Bundle, error)
	UpsertFunc             func(ctx context.Context, b *domain.Bundle) error
	UpdateFunc             func(ctx context.Context, bundleUUID string, upd domain.BundleUpdate) error
	UpdateCoverImgListFunc func(ctx context.Context, bundleUUID string, list []string) error
	UpdateThumbnailFunc    func(ctx context.Context, bundleUUID string, path *string) error
	ListSetsFunc           func(ctx context.Context) ([]*domain.BundleSet, error)
	GetSetFunc             func(ctx context.Context, setUUID string) (*domain.BundleSet, error)

	mu    sync.Mutex
	calls struct {
		UpdateCoverImgList [][]string
	}
}

func (m *bundleRepoMock) GetByUUID(ctx context.Context, bundleUUID string) (*domain.Bundle, error) {
	if m.GetByUUIDFunc == nil {
		panic("bundleRepoMock.GetByUUIDFunc: method is nil but bundleRepo.GetByUUID was just called")
	}
	return m.GetByUUIDFunc(ctx, bundleUUID)
}

func (m *bundleRepoMock) List(ctx context.Context, activeOnly bool) ([]*domain.Bundle, error) {
	if m.ListFunc == nil {
		panic("bundleRepoMock.ListFunc: method is nil but bundleRepo.List was just called")
	}
	return m.ListFunc(ctx, activeOnly)
}

func (m *bundleRepoMock) ListByUUIDs(ctx context.Context, uuids []string) ([]*domain.Bundle, error) {
	if m.ListByUUIDsFunc == nil {
		panic("bundleRepoMock.ListByUUIDsFunc: method is nil but bundleRepo.ListByUUIDs was just called")
	}
	return m.ListByUUIDsFunc(ctx, uuids)
}

func (m *bundleRepoMock) Upsert(ctx context.Context, b *domain.Bundle) error {
	if m.UpsertFunc == nil {
		panic("bundleRepoMock.UpsertFunc: method is nil but bundleRepo.Upsert was just called")
	}
	return m.UpsertFunc(ctx, b)
}

func (m *bundleRepoMock) Update(ctx context.Context, bundleUUID string, upd domain.BundleUpdate) error {
	if m.UpdateFunc == nil {
		panic("bundleRepoMock.UpdateFunc: method is nil but bundleRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, bundleUUID, upd)
}

func (m *bundleRepoMock) UpdateCoverImgList(ctx context.Context, bundleUUID string, list []string) error {
	if m.UpdateCoverImgListFunc == nil {
		panic("bundleRepoMock.UpdateCoverImgListFunc: method is nil but bundleRepo.UpdateCoverImgList was just called")
	}
	m.mu.Lock()
	m.calls.UpdateCoverImgList = append(m.calls.UpdateCoverImgList, append([]string(nil), list...))
	m.mu.Unlock()
	return m.UpdateCoverImgListFunc(ctx, bundleUUID, list)
}

func (m *bundleRepoMock) UpdateThumbnail(ctx context.Context, bundleUUID string, path *string) error {
	if m.UpdateThumbnailFunc == nil {
		panic("bundleRepoMock.UpdateThumbnailFunc: method is nil but bundleRepo.UpdateThumbnail was just called")
	}
	return m.UpdateThumbnailFunc(ctx, bundleUUID, path)
}

func (m *bundleRepoMock) ListSets(ctx context.Context) ([]*domain.BundleSet, error) {
	if m.ListSetsFunc == nil {
		panic("bundleRepoMock.ListSetsFunc: method is nil but bundleRepo.ListSets was just called")
	}
	return m.ListSetsFunc(ctx)
}

func (m *bundleRepoMock) GetSet(ctx context.Context, setUUID string) (*domain.BundleSet, error) {
	if m.GetSetFunc == nil {
		panic("bundleRepoMock.GetSetFunc: method is nil but bundleRepo.GetSet was just called")
	}
	return m.GetSetFunc(ctx, setUUID)
}

func (m *bundleRepoMock) UpdateCoverImgListCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.calls.UpdateCoverImgList...)
}

var _ humorRepo = &humorRepoMock{}

type humorRepoMock struct {
	ListByBundleFunc func(ctx context.Context, bundleUUID string) ([]*domain.Humor, error)
}

func (m *humorRepoMock) ListByBundle(ctx context.Context, bundleUUID string) ([]*domain.Humor, error) {
	if m.ListByBundleFunc == nil {
		panic("humorRepoMock.ListByBundleFunc: method is nil but humorRepo.ListByBundle was just called")
	}
	return m.ListByBundleFunc(ctx, bundleUUID)
}

var _ adminGate = &adminGateMock{}

type adminGateMock struct {
	VerifyFunc func(candidate string) error
}

func (m *adminGateMock) Verify(candidate string) error {
	if m.VerifyFunc == nil {
		panic("adminGateMock.VerifyFunc: method is nil but adminGate.Verify was just called")
	}
	return m.VerifyFunc(candidate)
}

func openGate() *adminGateMock {
	return &adminGateMock{VerifyFunc: func(string) error { return nil }}
}

func closedGate() *adminGateMock {
	return &adminGateMock{VerifyFunc: func(string) error { return domain.ErrUnauthorized }}
}

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	SaveFunc   func(ctx context.Context, r io.Reader, ext string) (string, error)
	DeleteFunc func(ctx context.Context, publicURL string) error

	mu    sync.Mutex
	calls struct {
		Save   []string
		Delete []string
	}
}

func (m *objectStoreMock) Save(ctx context.Context, r io.Reader, ext string) (string, error) {
	if m.SaveFunc == nil {
		panic("objectStoreMock.SaveFunc: method is nil but objectStore.Save was just called")
	}
	m.mu.Lock()
	m.calls.Save = append(m.calls.Save, ext)
	m.mu.Unlock()
	return m.SaveFunc(ctx, r, ext)
}

func (m *objectStoreMock) Delete(ctx context.Context, publicURL string) error {
	if m.DeleteFunc == nil {
		panic("objectStoreMock.DeleteFunc: method is nil but objectStore.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, publicURL)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, publicURL)
}

func (m *objectStoreMock) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls.Delete...)
}

// fixedStore always stores to the same URL and never fails.
func fixedStore(url string) *objectStoreMock {
	return &objectStoreMock{
		SaveFunc: func(ctx context.Context, r io.Reader, ext string) (string, error) {
			io.Copy(io.Discard, r)
			return url, nil
		},
		DeleteFunc: func(ctx context.Context, publicURL string) error { return nil },
	}
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}

// passthroughTx calls the function with the same context.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func fileReader() io.Reader { return strings.NewReader("image bytes") }
