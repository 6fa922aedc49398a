package resumes

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoListNewestFirstAndSoftDelete(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, Resume{ID: id, UserID: "owner", CreatedAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}
	if err := repo.Create(ctx, Resume{ID: "x", UserID: "other", CreatedAt: base}); err != nil {
		t.Fatalf("Create x: %v", err)
	}

	got, err := repo.ListByUser(ctx, "owner", 2, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("unexpected order %+v", got)
	}

	if err := repo.SoftDelete(ctx, "other", "c"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := repo.SoftDelete(ctx, "owner", "c"); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "owner", "c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted resume to be not found, got %v", err)
	}
	if err := repo.SoftDelete(ctx, "owner", "c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected second delete to be not found, got %v", err)
	}

	n, err := repo.CountByUser(ctx, "owner")
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 live resumes, got %d", n)
	}
}

func TestMemoryRepoRejectsMissingIDs(t *testing.T) {
	repo := NewMemoryRepo()
	if err := repo.Create(context.Background(), Resume{UserID: "owner"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMemoryRepoHonoursCancelledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.ListByUser(ctx, "owner", 10, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
