package llm

import (
	"context"
	"errors"
)

// Generator sends one prompt to a generative model and returns its reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Completion, error)
}

// Completion is the raw reply and usage metadata from a single call.
type Completion struct {
	Text string
	// TotalTokens is nil when the provider did not report usage.
	TotalTokens *int
	Model       string
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("llm generator not configured")

// PlaceholderGenerator stands in when no API key is configured.
type PlaceholderGenerator struct {
	Model string
}

// Generate returns ErrNotConfigured.
func (p PlaceholderGenerator) Generate(ctx context.Context, prompt string) (Completion, error) {
	_ = ctx
	_ = prompt
	return Completion{Model: p.Model}, ErrNotConfigured
}
