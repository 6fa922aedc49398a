package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores users in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

// Upsert mirrors PGRepo.Upsert.
func (r *MemoryRepo) Upsert(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	user.CreatedAt = now
	if existing, ok := r.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
		if user.FullName == "" {
			user.FullName = existing.FullName
		}
		if user.PictureURL == "" {
			user.PictureURL = existing.PictureURL
		}
	}
	user.UpdatedAt = now
	r.users[user.ID] = user
	return nil
}

// GetByID returns ErrNotFound for unknown ids.
func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

var _ Repo = (*MemoryRepo)(nil)
