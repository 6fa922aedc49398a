package resumes

import (
	"time"

	"resume-builder/resume/model"
)

// ResumeResponse is the outward-facing representation of a saved resume.
type ResumeResponse struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	TemplateID     string              `json:"templateId"`
	Content        model.ResumeContent `json:"content"`
	TargetRegion   string              `json:"targetRegion"`
	TargetIndustry string              `json:"targetIndustry"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ResumeSummary is a history row; the content stays out of list responses.
type ResumeSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	TemplateID     string    `json:"templateId"`
	TargetRegion   string    `json:"targetRegion"`
	TargetIndustry string    `json:"targetIndustry"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListResponse wraps a page of history rows.
type ListResponse struct {
	Items  []ResumeSummary `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:             r.ID,
		Title:          r.Title,
		TemplateID:     r.TemplateID,
		Content:        r.Content,
		TargetRegion:   r.TargetRegion,
		TargetIndustry: r.TargetIndustry,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toSummary(r Resume) ResumeSummary {
	return ResumeSummary{
		ID:             r.ID,
		Title:          r.Title,
		TemplateID:     r.TemplateID,
		TargetRegion:   r.TargetRegion,
		TargetIndustry: r.TargetIndustry,
		CreatedAt:      r.CreatedAt,
	}
}
