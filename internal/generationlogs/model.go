package generationlogs

import (
	"time"

	"resume-builder/resume/model"
)

// Record is one audit row per generation attempt, successful or not.
// OutputData and TokensUsed are nil when the attempt failed or the provider
// reported no usage. ErrorCode is empty on success.
type Record struct {
	ID         string
	UserID     string
	PromptType string
	InputData  model.BuilderForm
	OutputData *model.ResumeContent
	Region     string
	Industry   string
	ModelUsed  string
	TokensUsed *int
	LatencyMs  int64
	ErrorCode  string
	CreatedAt  time.Time
}

// Succeeded reports whether the attempt produced content.
func (r Record) Succeeded() bool {
	return r.ErrorCode == "" && r.OutputData != nil
}
