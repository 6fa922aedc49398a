package health

import (
	"context"
	"time"

	"resume-builder/internal/shared/telemetry"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the /api/health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
	LLM      string `json:"llm"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB Pinger
	// LLMConfigured is false when the placeholder generator is wired.
	LLMConfigured bool
}

// NewService constructs a health service. db may be nil for in-memory mode.
func NewService(db Pinger, llmConfigured bool) *Service {
	return &Service{DB: db, LLMConfigured: llmConfigured}
}

// Status reports dependency state. Only a failing database marks the service unhealthy.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Database: "memory", LLM: "placeholder"}
	if s.LLMConfigured {
		st.LLM = "configured"
	}
	if s.DB == nil {
		return st
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		telemetry.Warn("health.db_ping_failed", map[string]any{"error": err.Error()})
		st.OK = false
		st.Database = "down"
		return st
	}
	st.Database = "up"
	return st
}
