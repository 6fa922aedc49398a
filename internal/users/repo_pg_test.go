package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec(`INSERT INTO users (.+) ON CONFLICT \(id\) DO UPDATE SET (.+) COALESCE\(EXCLUDED.picture_url, users.picture_url\)`).
		WithArgs("google:1", "ada@example.com", "Ada", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = (&PGRepo{DB: db}).Upsert(context.Background(), User{ID: "google:1", Email: "ada@example.com", FullName: "Ada"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("google:1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "picture_url", "created_at", "updated_at"}).
			AddRow("google:1", "ada@example.com", nil, "https://img", now, now))

	repo := &PGRepo{DB: db}
	user, err := repo.GetByID(context.Background(), "google:1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.FullName != "" || user.PictureURL != "https://img" {
		t.Fatalf("unexpected user %+v", user)
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("google:9").
		WillReturnError(sql.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), "google:9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
