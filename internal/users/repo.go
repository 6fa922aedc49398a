package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no user row exists for the id.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidInput indicates a missing id or email.
	ErrInvalidInput = errors.New("invalid input")
)

type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
}
