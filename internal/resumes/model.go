package resumes

import (
	"time"

	"resume-builder/resume/model"
)

// DefaultTemplateID is the only layout the builder ships.
const DefaultTemplateID = "modern"

// Resume is a generated document owned by one user.
type Resume struct {
	ID             string
	UserID         string
	Title          string
	TemplateID     string
	Content        model.ResumeContent
	TargetRegion   string
	TargetIndustry string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}
