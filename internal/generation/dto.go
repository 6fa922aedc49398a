package generation

import "resume-builder/resume/model"

// GenerateRequest is the POST body. formData mirrors the builder UI state.
type GenerateRequest struct {
	FormData *model.BuilderForm `json:"formData"`
}

// OptionsResponse feeds the builder form's region and industry pickers.
type OptionsResponse struct {
	Regions       []string `json:"regions"`
	Industries    []string `json:"industries"`
	DefaultRegion string   `json:"defaultRegion"`
}

// GenerateResponse is returned on success. resumeId and tokensUsed are null
// when unavailable.
type GenerateResponse struct {
	Content    model.ResumeContent `json:"content"`
	ResumeID   *string             `json:"resumeId"`
	TokensUsed *int                `json:"tokensUsed"`
	LatencyMs  int64               `json:"latencyMs"`
	Warnings   []string            `json:"warnings,omitempty"`
}

func toResponse(res Result) GenerateResponse {
	return GenerateResponse{
		Content:    res.Content,
		ResumeID:   res.ResumeID,
		TokensUsed: res.TokensUsed,
		LatencyMs:  res.LatencyMs,
		Warnings:   res.Warnings,
	}
}
