package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Unauthorized", nil)
		return
	}

	fallback := User{
		Email:      middleware.UserEmailFromContext(c),
		FullName:   middleware.UserNameFromContext(c),
		PictureURL: middleware.UserPictureFromContext(c),
	}
	profile, err := h.Svc.Profile(c.Request.Context(), userID, fallback)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", err.Error())
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":          profile.ID,
		"email":       profile.Email,
		"fullName":    profile.FullName,
		"pictureUrl":  profile.PictureURL,
		"resumeCount": profile.ResumeCount,
	})
}
