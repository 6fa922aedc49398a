package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	SoftDelete(ctx context.Context, userID, resumeID string) error
}
