package respond

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// ErrorResponse is the uniform error envelope. Only the message reaches the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure with its internal code and sends the error envelope.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if details != nil {
		fields["details"] = details
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
