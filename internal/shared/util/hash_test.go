package util

import "testing"

func TestHashUserKey(t *testing.T) {
	id := "google:12345"
	got := HashUserKey(id)
	if got != HashUserKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestContentHashConcatenates(t *testing.T) {
	if ContentHash([]byte("ab"), []byte("c")) != ContentHash([]byte("abc")) {
		t.Fatalf("expected parts to hash as one stream")
	}
	if ContentHash([]byte("doc")) == ContentHash([]byte("pdf")) {
		t.Fatalf("expected different inputs to differ")
	}
}
