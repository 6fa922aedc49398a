package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Resume
	now  func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]Resume),
		now:  time.Now,
	}
}

// Create stores the resume.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if resume.ID == "" || resume.UserID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = r.now().UTC()
	}
	if resume.UpdatedAt.IsZero() {
		resume.UpdatedAt = resume.CreatedAt
	}
	r.byID[resume.ID] = resume
	return nil
}

// GetByID returns a live resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[resumeID]
	if !ok || resume.DeletedAt != nil {
		return Resume{}, ErrNotFound
	}
	if resume.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
}

// ListByUser returns live resumes for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var owned []Resume
	for _, resume := range r.byID {
		if resume.UserID == userID && resume.DeletedAt == nil {
			owned = append(owned, resume)
		}
	}
	r.mu.RUnlock()

	if offset >= len(owned) {
		return []Resume{}, nil
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	end := len(owned)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return owned[offset:end], nil
}

// CountByUser returns how many live resumes a user has.
func (r *MemoryRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, resume := range r.byID {
		if resume.UserID == userID && resume.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

// SoftDelete marks the resume deleted. It stays in memory but is no longer visible.
func (r *MemoryRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.byID[resumeID]
	if !ok || resume.DeletedAt != nil {
		return ErrNotFound
	}
	if resume.UserID != userID {
		return ErrForbidden
	}
	now := r.now().UTC()
	resume.DeletedAt = &now
	resume.UpdatedAt = now
	r.byID[resumeID] = resume
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
