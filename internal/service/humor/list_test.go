package humor

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/dailydoses/humor-backend/internal/domain"
	"github.com/dailydoses/humor-backend/pkg/dateutil"
)

func strPtr(s string) *string { return &s }

func humorAt(uuid, date string, cat domain.HumorCategory, idx int) *domain.Humor {
	return &domain.Humor{
		UUID:        uuid,
		Category:    cat,
		Context:     "context " + uuid,
		ContextList: []string{},
		Sender:      "admin",
		Source:      "test",
		ReleaseDate: date,
		CreatedDate: date,
		Index:       idx,
		Active:      true,
	}
}

func TestList_SingleCategory(t *testing.T) {
	t.Parallel()

	repo := &humorRepoMock{
		ListFunc: func(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
			return []*domain.Humor{
				humorAt("a", "2024-05-01", domain.CategoryDadJokes, 0),
			}, nil
		},
	}
	svc := NewService(slog.Default(), repo, openGate())

	got, err := svc.List(context.Background(), ListInput{Category: strPtr("DAD_JOKES")})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	calls := repo.ListCalls()
	if len(calls) != 1 {
		t.Fatalf("repo called %d times, want 1", len(calls))
	}
	if calls[0].Category == nil || *calls[0].Category != domain.CategoryDadJokes {
		t.Errorf("category filter not forwarded: %+v", calls[0])
	}
}

func TestList_InvalidCategory(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &humorRepoMock{}, openGate())

	_, err := svc.List(context.Background(), ListInput{Category: strPtr("NOT_A_CATEGORY")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("List(bad category) = %v, want ErrValidation", err)
	}
}

func TestList_InvalidDate(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &humorRepoMock{}, openGate())

	_, err := svc.List(context.Background(), ListInput{Date: strPtr("05-01-2024")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("List(bad date) = %v, want ErrValidation", err)
	}
}

func TestList_FanOutAllCategories(t *testing.T) {
	t.Parallel()

	repo := &humorRepoMock{
		ListFunc: func(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
			switch *f.Category {
			case domain.CategoryDadJokes:
				return []*domain.Humor{
					humorAt("old", "2024-05-01", domain.CategoryDadJokes, 0),
				}, nil
			case domain.CategoryOneLiners:
				return []*domain.Humor{
					humorAt("new-1", "2024-05-02", domain.CategoryOneLiners, 1),
					humorAt("new-0", "2024-05-02", domain.CategoryOneLiners, 0),
				}, nil
			default:
				return []*domain.Humor{}, nil
			}
		},
	}
	svc := NewService(slog.Default(), repo, openGate())

	got, err := svc.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(repo.ListCalls()) != len(domain.Categories) {
		t.Errorf("fan-out queries = %d, want %d", len(repo.ListCalls()), len(domain.Categories))
	}

	// Merged ordering: release_date DESC, then index ASC.
	wantOrder := []string{"new-0", "new-1", "old"}
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].UUID != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].UUID, want)
		}
	}
}

func TestList_FanOutSubReadFailure(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("read failed")
	repo := &humorRepoMock{
		ListFunc: func(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
			if *f.Category == domain.CategoryOXQuiz {
				return nil, sentinel
			}
			return []*domain.Humor{}, nil
		},
	}
	svc := NewService(slog.Default(), repo, openGate())

	_, err := svc.List(context.Background(), ListInput{})
	if !errors.Is(err, sentinel) {
		t.Errorf("List with failing sub-read = %v, want wrapped sentinel", err)
	}
}

func TestList_IsNewOnTodayItems(t *testing.T) {
	t.Parallel()

	today := dateutil.Today()
	repo := &humorRepoMock{
		ListFunc: func(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
			return []*domain.Humor{
				humorAt("today", today, domain.CategoryDadJokes, 0),
				humorAt("older", "2020-01-01", domain.CategoryDadJokes, 0),
			}, nil
		},
	}
	svc := NewService(slog.Default(), repo, openGate())

	got, err := svc.List(context.Background(), ListInput{Category: strPtr("DAD_JOKES")})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !got[0].IsNew {
		t.Error("today's item should be marked is_new")
	}
	if got[1].IsNew {
		t.Error("older item should not be marked is_new")
	}
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	repo := &humorRepoMock{
		ListFunc: func(ctx context.Context, f domain.HumorFilter) ([]*domain.Humor, error) {
			return []*domain.Humor{}, nil
		},
	}
	svc := NewService(slog.Default(), repo, openGate())

	got, err := svc.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil {
		t.Error("empty listing should be a non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
