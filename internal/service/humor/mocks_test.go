package humor

import (
	"context"
	"sync"

	"github.com/dailydoses/humor-backend/internal/domain"
)

var _ humorRepo = &humorRepoMock{}

type humorRepoMock struct {
	ListFunc   func(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error)
	UpsertFunc func(ctx context.Context, h *domain.Humor) error
	UpdateFunc func(ctx context.Context, humorUUID string, upd domain.HumorUpdate) error
	ExistsFunc func(ctx context.Context, humorUUID string) (bool, error)

	mu    sync.Mutex
	calls struct {
		List   []domain.HumorFilter
		Upsert []*domain.Humor
		Update []string
	}
}

func (m *humorRepoMock) List(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
	if m.ListFunc == nil {
		panic("humorRepoMock.ListFunc: method is nil but humorRepo.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, f)
	m.mu.Unlock()
	return m.ListFunc(ctx, f)
}

func (m *humorRepoMock) Upsert(ctx context.Context, h *domain.Humor) error {
	if m.UpsertFunc == nil {
		panic("humorRepoMock.UpsertFunc: method is nil but humorRepo.Upsert was just called")
	}
	m.mu.Lock()
	m.calls.Upsert = append(m.calls.Upsert, h)
	m.mu.Unlock()
	return m.UpsertFunc(ctx, h)
}

func (m *humorRepoMock) Update(ctx context.Context, humorUUID string, upd domain.HumorUpdate) error {
	if m.UpdateFunc == nil {
		panic("humorRepoMock.UpdateFunc: method is nil but humorRepo.Update was just called")
	}
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, humorUUID)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, humorUUID, upd)
}

func (m *humorRepoMock) Exists(ctx context.Context, humorUUID string) (bool, error) {
	if m.ExistsFunc == nil {
		panic("humorRepoMock.ExistsFunc: method is nil but humorRepo.Exists was just called")
	}
	return m.ExistsFunc(ctx, humorUUID)
}

func (m *humorRepoMock) ListCalls() []domain.HumorFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.HumorFilter(nil), m.calls.List...)
}

func (m *humorRepoMock) UpsertCalls() []*domain.Humor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Humor(nil), m.calls.Upsert...)
}

func (m *humorRepoMock) UpdateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls.Update...)
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

// openGate always lets the password through.
func openGate() *adminGateMock {
	return &adminGateMock{VerifyFunc: func(string) error { return nil }}
}

// closedGate always rejects.
func closedGate() *adminGateMock {
	return &adminGateMock{VerifyFunc: func(string) error { return domain.ErrUnauthorized }}
}
