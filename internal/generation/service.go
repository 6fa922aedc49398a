package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-builder/internal/generationlogs"
	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
)

const (
	// PromptType is stored in generation_logs.prompt_type.
	PromptType = "resume_generation"

	// WarningResumeNotSaved is returned when the content was generated but
	// the resume row could not be written.
	WarningResumeNotSaved = "resume_not_saved"

	DefaultTimeout = 45 * time.Second
)

// ResumeWriter persists a generated resume.
type ResumeWriter interface {
	Create(ctx context.Context, resume resumes.Resume) error
}

// LogWriter persists one generation audit record.
type LogWriter interface {
	Create(ctx context.Context, record generationlogs.Record) error
}

// Service runs the generate pipeline: validate, normalize, prompt, call the
// model, parse, then persist.
type Service struct {
	LLM     llm.Generator
	Resumes ResumeWriter
	Logs    LogWriter
	// Model is recorded in generation_logs when the reply carries none.
	Model   string
	Timeout time.Duration
	Now     func() time.Time
}

// Result is what the endpoint returns on success.
type Result struct {
	Content    model.ResumeContent
	ResumeID   *string
	TokensUsed *int
	LatencyMs  int64
	Warnings   []string
}

// Generate turns form into resume content for ownerID. Persistence failures
// never fail the request.
func (s *Service) Generate(ctx context.Context, ownerID string, form model.BuilderForm) (Result, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Result{}, ErrUnauthenticated
	}
	if err := form.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if s.LLM == nil {
		return Result{}, fmt.Errorf("%w: %w", ErrGenerationService, llm.ErrNotConfigured)
	}

	in := Normalize(form)
	if !in.RegionKnown || (in.Industry != "" && !in.IndustryKnown) {
		telemetry.Warn("generation.enum_fallback", map[string]any{
			"user_id":        ownerID,
			"region":         in.Region,
			"region_known":   in.RegionKnown,
			"industry":       in.Industry,
			"industry_known": in.IndustryKnown,
		})
	}

	prompt, err := BuildPrompt(in)
	if err != nil {
		return Result{}, err
	}

	metrics.IncGenerationStarted()

	completion, latency, callErr := s.call(ctx, prompt)
	latencyMs := latency.Milliseconds()
	modelUsed := completion.Model
	if modelUsed == "" {
		modelUsed = s.Model
	}

	record := generationlogs.Record{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		PromptType: PromptType,
		InputData:  form,
		Region:     in.Region,
		Industry:   in.Industry,
		ModelUsed:  modelUsed,
		TokensUsed: completion.TotalTokens,
		LatencyMs:  latencyMs,
	}

	var content model.ResumeContent
	var strategy string
	if callErr == nil {
		content, strategy, callErr = parseReply(completion.Text, form.Personal)
	}
	if callErr != nil {
		code := ErrorCode(callErr)
		record.ErrorCode = code
		record.CreatedAt = s.now()
		s.writeLog(context.WithoutCancel(ctx), record)

		metrics.IncGenerationFailed(code)
		metrics.ObserveGenerationDurationMs(float64(latencyMs))
		telemetry.Error("generation.failed", map[string]any{
			"user_id":    ownerID,
			"error_code": code,
			"latency_ms": latencyMs,
			"error":      callErr.Error(),
		})
		return Result{}, callErr
	}

	record.OutputData = &content
	record.CreatedAt = s.now()

	resume := resumes.Resume{
		ID:             uuid.NewString(),
		UserID:         ownerID,
		Title:          resumeTitle(form, in.Industry),
		TemplateID:     resumes.DefaultTemplateID,
		Content:        content,
		TargetRegion:   in.Region,
		TargetIndustry: in.Industry,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.CreatedAt,
	}

	// Persistence must finish even if the client goes away.
	persistCtx := context.WithoutCancel(ctx)
	var saveErr error
	var g errgroup.Group
	g.Go(func() error {
		if s.Resumes == nil {
			saveErr = errors.New("no resume store configured")
			return nil
		}
		saveErr = s.Resumes.Create(persistCtx, resume)
		return nil
	})
	g.Go(func() error {
		s.writeLog(persistCtx, record)
		return nil
	})
	_ = g.Wait()

	res := Result{
		Content:    content,
		TokensUsed: completion.TotalTokens,
		LatencyMs:  latencyMs,
	}
	if saveErr != nil {
		metrics.IncResumeSaveFailed()
		telemetry.Error("generation.resume_save_failed", map[string]any{
			"user_id": ownerID,
			"error":   saveErr.Error(),
		})
		res.Warnings = append(res.Warnings, WarningResumeNotSaved)
	} else {
		id := resume.ID
		res.ResumeID = &id
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(latencyMs))
	if completion.TotalTokens != nil {
		metrics.AddGenerationTokens(*completion.TotalTokens)
	}
	telemetry.Info("generation.completed", map[string]any{
		"user_id":     ownerID,
		"resume_id":   resume.ID,
		"saved":       saveErr == nil,
		"model":       modelUsed,
		"latency_ms":  latencyMs,
		"parse_route": strategy,
	})
	return res, nil
}

// call runs the model under the generation timeout and measures only the call.
func (s *Service) call(ctx context.Context, prompt string) (llm.Completion, time.Duration, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	completion, err := s.LLM.Generate(callCtx, prompt)
	latency := time.Since(start)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrGenerationService, context.DeadlineExceeded)
		} else {
			err = fmt.Errorf("%w: %w", ErrGenerationService, err)
		}
		return llm.Completion{Model: completion.Model}, latency, err
	}
	return completion, latency, nil
}

func (s *Service) writeLog(ctx context.Context, record generationlogs.Record) {
	if s.Logs == nil {
		return
	}
	if err := s.Logs.Create(ctx, record); err != nil {
		telemetry.Error("generation.log_write_failed", map[string]any{
			"user_id":    record.UserID,
			"log_id":     record.ID,
			"error_code": record.ErrorCode,
			"error":      err.Error(),
		})
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// resumeTitle is the trimmed form title, else "<name> — <industry>".
func resumeTitle(form model.BuilderForm, industry string) string {
	if title := strings.TrimSpace(form.Title); title != "" {
		return title
	}
	name := strings.TrimSpace(form.Personal.Name)
	if industry == "" {
		return name
	}
	return name + " — " + industry
}
