package users

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoUpsertKeepsProfileOnSparseLogin(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, User{ID: "google:1", Email: "ada@example.com", FullName: "Ada", PictureURL: "https://img/ada.png"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first, _ := repo.GetByID(ctx, "google:1")

	if err := repo.Upsert(ctx, User{ID: "google:1", Email: "ada@new.example.com"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err := repo.GetByID(ctx, "google:1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "ada@new.example.com" {
		t.Fatalf("expected refreshed email, got %q", got.Email)
	}
	if got.FullName != "Ada" || got.PictureURL != "https://img/ada.png" {
		t.Fatalf("expected stored profile to survive, got %+v", got)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at changed on upsert")
	}
}

func TestMemoryRepoGetByIDUnknown(t *testing.T) {
	if _, err := NewMemoryRepo().GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
