package generationlogs

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo keeps records in insertion order and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends the record.
func (r *MemoryRepo) Create(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" || record.UserID == "" {
		return ErrInvalidInput
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// List returns a copy of the records for a user, oldest first.
func (r *MemoryRepo) List(userID string) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Record{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
