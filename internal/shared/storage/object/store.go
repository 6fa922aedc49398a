package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned by Open when no object is stored under the key.
var ErrNotExist = errors.New("object does not exist")

// ObjectStore saves and retrieves binary objects by caller-chosen key.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
