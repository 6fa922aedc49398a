package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"resume-builder/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port               string
	CORSAllowOrigin    []string
	ObjectStoreType    string
	LocalStoreDir      string
	AWSRegion          string
	S3Bucket           string
	S3Prefix           string
	SSEKMSKeyID        string
	GeminiAPIKey       string
	LLMModel           string
	// LLMTemperature is negative when unset, leaving the provider default.
	LLMTemperature     float64
	GenerationTimeout  time.Duration
	GenerateRatePerMin int
	PDFRenderer        string
	DatabaseURL        string
	Env                string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
	JWTSecret          string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Error("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:        getEnv("SSE_KMS_KEY_ID", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		LLMModel:           getEnv("LLM_MODEL", "gemini-2.0-flash"),
		LLMTemperature:     getTemperature("LLM_TEMPERATURE"),
		GenerationTimeout:  getDuration("GENERATION_TIMEOUT", 45*time.Second),
		GenerateRatePerMin: getInt("GENERATE_RATE_PER_MIN", 10),
		PDFRenderer:        normalizePDFRenderer(getEnv("PDF_RENDERER", "")),
		DatabaseURL:        dbURL,
		Env:                env,
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// getTemperature returns -1 unless key holds a value in [0, 2].
func getTemperature(key string) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return -1
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil || t < 0 || t > 2 {
		return -1
	}
	return t
}

// getDuration accepts Go duration strings ("45s") or plain seconds ("45").
func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizePDFRenderer(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "chromedp", "chrome":
		return "chromedp"
	default:
		return ""
	}
}
