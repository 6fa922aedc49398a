package resumes

import (
	"context"
	"errors"
)

// Service contains business logic for saved resumes.
type Service struct {
	Repo     Repo
	Exporter *Exporter
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns live resumes for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Count returns the number of live resumes for a user.
func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrInvalidInput
	}
	return s.Repo.CountByUser(ctx, userID)
}

// Delete soft-deletes a resume. Lookup runs first so another user's resume
// reports ErrForbidden rather than ErrNotFound.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if _, err := s.Get(ctx, userID, resumeID); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, userID, resumeID)
}

// Export renders a stored resume in the requested format.
func (s *Service) Export(ctx context.Context, userID, resumeID, format string) (Export, error) {
	if s.Exporter == nil {
		return Export{}, errors.New("missing exporter")
	}
	resume, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return Export{}, err
	}
	return s.Exporter.Export(ctx, resume, format)
}
