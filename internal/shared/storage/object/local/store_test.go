package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"resume-builder/internal/shared/storage/object"
)

func TestPutThenOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	n, err := store.Put(ctx, "exports/r1/abc.doc", "application/msword", strings.NewReader("<html></html>"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if n != int64(len("<html></html>")) {
		t.Fatalf("unexpected size %d", n)
	}

	rc, err := store.Open(ctx, "exports/r1/abc.doc")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "<html></html>" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestOpenMissingReturnsErrNotExist(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "exports/none/x.pdf")
	if !errors.Is(err, object.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Put(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}
