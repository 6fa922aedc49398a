package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/generation"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

// RouterDeps carries the handlers the router mounts. Nil handlers are skipped.
type RouterDeps struct {
	Config            config.Config
	GenerationHandler *generation.Handler
	ResumesHandler    *resumes.Handler
	UserHandler       *users.Handler
	GoogleAuth        *googleauth.GoogleService
	Health            *health.Service
	// RateLimiter is shared across requests; nil builds a fresh one.
	RateLimiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	public := r.Group("/api")
	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, false)
	}
	public.GET("/health", func(c *gin.Context) {
		st := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, st)
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(public)
	}

	api := r.Group("/api")
	api.Use(
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.GenerateRateLimitGroup: middleware.PerMinute(deps.Config.GenerateRatePerMin),
			},
			GroupFor: rateLimitGroup,
			Limiter:  deps.RateLimiter,
		}),
	)
	if deps.GenerationHandler != nil {
		deps.GenerationHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup puts generation in its own bucket; everything else is unlimited.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && c.FullPath() == "/api/resume/generate" {
		return middleware.GenerateRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
