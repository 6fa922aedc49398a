package respond

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

func TestErrorWritesMessageOnlyEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := telemetry.SetOutput(io.Discard)
	defer restore()

	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		Error(c, http.StatusInternalServerError, "generation_service", "Failed to generate resume. Please try again.", map[string]any{"cause": "timeout"})
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected only the error key, got %v", payload)
	}
	if payload["error"] != "Failed to generate resume. Please try again." {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}
