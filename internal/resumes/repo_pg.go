package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, template_id, content, target_region, target_industry, created_at, updated_at`

// Create inserts a resume. Content is stored as jsonb.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	content, err := json.Marshal(resume.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	templateID := resume.TemplateID
	if templateID == "" {
		templateID = DefaultTemplateID
	}
	const query = `
INSERT INTO resumes (
    id, user_id, title, template_id, content, target_region, target_industry, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		templateID,
		content,
		resume.TargetRegion,
		resume.TargetIndustry,
		resume.CreatedAt,
	)
	return err
}

// GetByID returns a live resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
}

// ListByUser lists live resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// CountByUser returns how many live resumes a user has.
func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	const query = `SELECT count(*) FROM resumes WHERE user_id = $1 AND deleted_at IS NULL`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SoftDelete stamps deleted_at. Ownership is part of the predicate.
func (r *PGRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		resume  Resume
		content []byte
	)
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.TemplateID,
		&content,
		&resume.TargetRegion,
		&resume.TargetIndustry,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &resume.Content); err != nil {
			return Resume{}, fmt.Errorf("decode resume content %s: %w", resume.ID, err)
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
