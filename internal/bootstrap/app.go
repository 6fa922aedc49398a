package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/generation"
	"resume-builder/internal/generationlogs"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/users"
	"resume-builder/resume/render"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.ObjectStore
	LLM               llm.Generator
	PDF               render.PDFRenderer
	ResumesRepo       resumes.Repo
	LogsRepo          generationlogs.Repo
	UsersRepo         users.Repo
	GenerationService *generation.Service
	ResumesService    *resumes.Service
	UsersService      *users.Service
	GenerationHandler *generation.Handler
	ResumesHandler    *resumes.Handler
	UsersHandler      *users.Handler
	GoogleAuth        *googleauth.GoogleService
	Health            *health.Service
}

// Options overrides dependencies, mainly for tests.
type Options struct {
	LLM llm.Generator
	PDF render.PDFRenderer
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	return BuildWithOptions(cfg, Options{})
}

// BuildWithOptions is Build with injectable generator and PDF renderer.
func BuildWithOptions(cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	generator := opts.LLM
	if generator == nil {
		generator, err = buildLLM(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	pdf := opts.PDF
	if pdf == nil && cfg.PDFRenderer == "chromedp" {
		pdf = &render.ChromePDF{}
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    generator,
		PDF:    pdf,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		GenerationHandler: app.GenerationHandler,
		ResumesHandler:    app.ResumesHandler,
		UserHandler:       app.UsersHandler,
		GoogleAuth:        app.GoogleAuth,
		Health:            app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{
				"reason": "database unavailable",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		telemetry.Warn("bootstrap.llm_not_configured", map[string]any{"model": cfg.LLMModel})
		return llm.PlaceholderGenerator{Model: cfg.LLMModel}, nil
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, gemini.OptionsFromTemperature(cfg.LLMTemperature)...)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var resumeRepo resumes.Repo
	var logRepo generationlogs.Repo
	var userRepo users.Repo

	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		logRepo = &generationlogs.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		logRepo = generationlogs.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{
		Repo: resumeRepo,
		Exporter: &resumes.Exporter{
			Renderer: render.Renderer{PDF: app.PDF},
			Store:    app.Store,
		},
	}
	generationSvc := &generation.Service{
		LLM:     app.LLM,
		Resumes: resumeRepo,
		Logs:    logRepo,
		Model:   app.Config.LLMModel,
		Timeout: app.Config.GenerationTimeout,
	}
	userSvc := users.NewService(userRepo, resumeSvc)

	app.ResumesRepo = resumeRepo
	app.LogsRepo = logRepo
	app.UsersRepo = userRepo
	app.ResumesService = resumeSvc
	app.GenerationService = generationSvc
	app.UsersService = userSvc
	app.GenerationHandler = generation.NewHandler(generationSvc)
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	_, placeholder := app.LLM.(llm.PlaceholderGenerator)
	if app.DB != nil {
		app.Health = health.NewService(app.DB, !placeholder)
	} else {
		app.Health = health.NewService(nil, !placeholder)
	}
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
}
