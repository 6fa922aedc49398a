package resumes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.delete)
	rg.GET("/resumes/:id/export", h.export)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := defaultListLimit
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(c, err, "failed to list resumes")
		return
	}

	resp := ListResponse{Items: make([]ResumeSummary, 0, len(items)), Limit: limit, Offset: offset}
	for _, r := range items {
		resp.Items = append(resp.Items, toSummary(r))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := strings.TrimSpace(c.Param("id"))
	c.Set("resumeId", resumeID)

	resume, err := h.Svc.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		h.writeError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := strings.TrimSpace(c.Param("id"))
	c.Set("resumeId", resumeID)

	if err := h.Svc.Delete(c.Request.Context(), userID, resumeID); err != nil {
		h.writeError(c, err, "failed to delete resume")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := strings.TrimSpace(c.Param("id"))
	format := c.Query("format")
	c.Set("resumeId", resumeID)
	c.Set("exportFormat", format)

	out, err := h.Svc.Export(c.Request.Context(), userID, resumeID, format)
	if err != nil {
		h.writeError(c, err, "failed to export resume")
		return
	}
	if out.Cached {
		c.Header("X-Export-Cache", "hit")
	} else {
		c.Header("X-Export-Cache", "miss")
	}
	respond.Attachment(c, out.ContentType, out.FileName, out.Body)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "Forbidden", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
	case errors.Is(err, ErrExportUnsupported):
		respond.Error(c, http.StatusNotImplemented, "export_unsupported", "PDF export is not enabled on this server", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, err.Error())
	}
}
