package generation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
)

const (
	maxBodyBytes = 1 << 20 // 1MB

	msgUnauthorized   = "Unauthorized"
	msgInvalidBody    = "Invalid request body"
	msgGenerateFailed = "Failed to generate resume. Please try again."
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the generate route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/generate", h.generate)
	rg.GET("/resume/options", h.options)
}

// options lists the regions and industries the prompt has guidance for.
func (h *Handler) options(c *gin.Context) {
	respond.OK(c, OptionsResponse{
		Regions:       Regions(),
		Industries:    Industries(),
		DefaultRegion: DefaultRegion,
	})
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", msgUnauthorized, nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FormData == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", msgInvalidBody, nil)
		return
	}

	res, err := h.Svc.Generate(c.Request.Context(), userID, *req.FormData)
	if err != nil {
		var formErr *model.FormError
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", msgUnauthorized, nil)
		case errors.As(err, &formErr):
			respond.Error(c, http.StatusBadRequest, "validation_error", formErr.Error(), gin.H{"field": formErr.Field})
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", msgInvalidBody, nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCode(err), msgGenerateFailed, err.Error())
		}
		return
	}

	if res.ResumeID != nil {
		c.Set("resumeId", *res.ResumeID)
	}
	respond.OK(c, toResponse(res))
}
