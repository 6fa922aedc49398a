package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/shared/telemetry"
)

// ResumeCounter reports how many live resumes a user owns.
type ResumeCounter interface {
	Count(ctx context.Context, userID string) (int, error)
}

type Service struct {
	Repo    Repo
	Resumes ResumeCounter
}

func NewService(repo Repo, resumes ResumeCounter) *Service {
	return &Service{Repo: repo, Resumes: resumes}
}

// UpsertFromAuth persists the identity returned by the OAuth provider so
// resume ownership survives token refreshes.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	user.ID = strings.TrimSpace(user.ID)
	user.Email = strings.TrimSpace(user.Email)
	if user.ID == "" || user.Email == "" {
		return fmt.Errorf("%w: user id and email are required", ErrInvalidInput)
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

// Profile loads the user and its resume count. A user missing from the
// store (in-memory dev restarts) is rebuilt from the token claims in
// fallback. A failed count is logged and reported as zero.
func (s *Service) Profile(ctx context.Context, userID string, fallback User) (Profile, error) {
	user, err := s.GetByID(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
		user = fallback
		user.ID = userID
	case err != nil:
		return Profile{}, err
	}

	profile := Profile{User: user}
	if s.Resumes != nil {
		n, err := s.Resumes.Count(ctx, userID)
		if err != nil {
			telemetry.Warn("users.resume_count_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		} else {
			profile.ResumeCount = n
		}
	}
	return profile, nil
}
