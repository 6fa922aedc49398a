package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-builder/internal/llm"
)

// DefaultModel is used when LLM_MODEL is unset.
const DefaultModel = "gemini-2.0-flash"

const jsonMIMEType = "application/json"

// contentGenerator is the subset of *genai.Models the client calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Generator on the Gemini API.
type Client struct {
	models      contentGenerator
	model       string
	temperature *float32
}

// Option customizes a Client.
type Option func(*Client)

// WithTemperature sets the sampling temperature. Provider default otherwise.
func WithTemperature(t float32) Option {
	return func(c *Client) { c.temperature = genai.Ptr(t) }
}

// OptionsFromTemperature returns WithTemperature for t >= 0 and nothing otherwise.
func OptionsFromTemperature(t float64) []Option {
	if t < 0 {
		return nil
	}
	return []Option{WithTemperature(float32(t))}
}

// NewClient constructs a Gemini client for the given API key and model.
func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newClient(gc.Models, model, opts...), nil
}

func newClient(models contentGenerator, model string, opts ...Option) *Client {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	c := &Client{models: models, model: model}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate asks the model for a JSON reply to prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (llm.Completion, error) {
	if c == nil || c.models == nil {
		return llm.Completion{}, llm.ErrNotConfigured
	}
	out := llm.Completion{Model: c.model}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		Temperature:      c.temperature,
	}
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return out, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return out, errors.New("gemini returned no response")
	}
	out.Text = resp.Text()
	if resp.UsageMetadata != nil && resp.UsageMetadata.TotalTokenCount > 0 {
		total := int(resp.UsageMetadata.TotalTokenCount)
		out.TotalTokens = &total
	}
	return out, nil
}

var _ llm.Generator = (*Client)(nil)
