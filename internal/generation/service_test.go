package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/generationlogs"
	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/resume/model"
)

type fakeLLM struct {
	text   string
	tokens *int
	err    error
	block  bool
	prompt string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (llm.Completion, error) {
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return llm.Completion{}, ctx.Err()
	}
	if f.err != nil {
		return llm.Completion{}, f.err
	}
	return llm.Completion{Text: f.text, TotalTokens: f.tokens, Model: "gemini-2.0-flash"}, nil
}

type failingResumes struct{}

func (failingResumes) Create(context.Context, resumes.Resume) error {
	return errors.New("db down")
}

type failingLogs struct{}

func (failingLogs) Create(context.Context, generationlogs.Record) error {
	return errors.New("log table missing")
}

func intPtr(n int) *int { return &n }

func newTestService(gen llm.Generator) (*Service, *resumes.MemoryRepo, *generationlogs.MemoryRepo) {
	resumeRepo := resumes.NewMemoryRepo()
	logRepo := generationlogs.NewMemoryRepo()
	return &Service{
		LLM:     gen,
		Resumes: resumeRepo,
		Logs:    logRepo,
		Model:   "gemini-2.0-flash",
		Timeout: time.Second,
	}, resumeRepo, logRepo
}

func TestGenerateSavesResumeAndLog(t *testing.T) {
	gen := &fakeLLM{text: validReply, tokens: intPtr(812)}
	svc, resumeRepo, logRepo := newTestService(gen)
	form := sampleForm()

	res, err := svc.Generate(context.Background(), "google:1", form)
	require.NoError(t, err)

	require.NotNil(t, res.ResumeID)
	require.NotNil(t, res.TokensUsed)
	assert.Equal(t, 812, *res.TokensUsed)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, form.Personal, res.Content.Personal)
	assert.Contains(t, gen.prompt, "## Candidate input")

	saved, err := resumeRepo.GetByID(context.Background(), "google:1", *res.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace — Technology", saved.Title)
	assert.Equal(t, resumes.DefaultTemplateID, saved.TemplateID)
	assert.Equal(t, "UK", saved.TargetRegion)
	assert.Equal(t, "Technology", saved.TargetIndustry)

	logs := logRepo.List("google:1")
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Succeeded())
	assert.Equal(t, PromptType, logs[0].PromptType)
	assert.Equal(t, "gemini-2.0-flash", logs[0].ModelUsed)
	assert.Equal(t, res.LatencyMs, logs[0].LatencyMs)
	assert.Equal(t, form.Personal.Name, logs[0].InputData.Personal.Name)
}

func TestGenerateUsesFormTitle(t *testing.T) {
	svc, resumeRepo, _ := newTestService(&fakeLLM{text: validReply})
	form := sampleForm()
	form.Title = "  Platform roles  "

	res, err := svc.Generate(context.Background(), "google:1", form)
	require.NoError(t, err)
	require.Nil(t, res.TokensUsed)

	saved, err := resumeRepo.GetByID(context.Background(), "google:1", *res.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "Platform roles", saved.Title)
}

func TestGenerateRequiresOwnerAndName(t *testing.T) {
	gen := &fakeLLM{text: validReply}
	svc, _, logRepo := newTestService(gen)

	_, err := svc.Generate(context.Background(), "", sampleForm())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	form := sampleForm()
	form.Personal.Name = "   "
	_, err = svc.Generate(context.Background(), "google:1", form)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, model.ErrInvalidForm)

	assert.Empty(t, gen.prompt, "model must not be called")
	assert.Empty(t, logRepo.List("google:1"))
}

func TestGenerateFailureIsLogged(t *testing.T) {
	gen := &fakeLLM{text: "I cannot help with that."}
	svc, resumeRepo, logRepo := newTestService(gen)

	_, err := svc.Generate(context.Background(), "google:1", sampleForm())
	assert.ErrorIs(t, err, ErrMalformedResponse)

	n, err := resumeRepo.CountByUser(context.Background(), "google:1")
	require.NoError(t, err)
	assert.Zero(t, n)

	logs := logRepo.List("google:1")
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].OutputData)
	assert.Equal(t, "malformed_response", logs[0].ErrorCode)
}

func TestGenerateTimeout(t *testing.T) {
	svc, _, logRepo := newTestService(&fakeLLM{block: true})
	svc.Timeout = 20 * time.Millisecond

	_, err := svc.Generate(context.Background(), "google:1", sampleForm())
	assert.ErrorIs(t, err, ErrGenerationService)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	logs := logRepo.List("google:1")
	require.Len(t, logs, 1)
	assert.Equal(t, "generation_timeout", logs[0].ErrorCode)
	assert.GreaterOrEqual(t, logs[0].LatencyMs, int64(20))
}

func TestGenerateProviderError(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{err: errors.New("quota exceeded")})

	_, err := svc.Generate(context.Background(), "google:1", sampleForm())
	assert.ErrorIs(t, err, ErrGenerationService)
	assert.Equal(t, "generation_service", ErrorCode(err))
}

func TestGenerateResumeSaveFailureAddsWarning(t *testing.T) {
	svc, _, logRepo := newTestService(&fakeLLM{text: validReply})
	svc.Resumes = failingResumes{}

	res, err := svc.Generate(context.Background(), "google:1", sampleForm())
	require.NoError(t, err)

	assert.Nil(t, res.ResumeID)
	assert.Equal(t, []string{WarningResumeNotSaved}, res.Warnings)
	assert.Len(t, logRepo.List("google:1"), 1)
}

func TestGenerateLogFailureIsIgnored(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{text: validReply})
	svc.Logs = failingLogs{}

	res, err := svc.Generate(context.Background(), "google:1", sampleForm())
	require.NoError(t, err)

	assert.NotNil(t, res.ResumeID)
	assert.Empty(t, res.Warnings)
}

func TestGeneratePersistsAfterClientCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen := &cancelAfterReply{text: validReply, cancel: cancel}
	svc, resumeRepo, _ := newTestService(gen)

	res, err := svc.Generate(ctx, "google:1", sampleForm())
	require.NoError(t, err)
	require.NotNil(t, res.ResumeID)

	_, err = resumeRepo.GetByID(context.Background(), "google:1", *res.ResumeID)
	assert.NoError(t, err)
}

// cancelAfterReply returns a good reply, then cancels the request context
// before persistence runs.
type cancelAfterReply struct {
	text   string
	cancel context.CancelFunc
}

func (c *cancelAfterReply) Generate(context.Context, string) (llm.Completion, error) {
	defer c.cancel()
	return llm.Completion{Text: c.text}, nil
}

func TestResumeTitle(t *testing.T) {
	form := model.BuilderForm{Personal: model.Personal{Name: " Ada "}}
	assert.Equal(t, "Ada", resumeTitle(form, ""))
	assert.Equal(t, "Ada — Finance", resumeTitle(form, "Finance"))
}
