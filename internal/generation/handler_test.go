package generation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/resume/model"
)

func newGenerateRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "test-secret")

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.Auth())
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	token, err := auth.SignJWT(auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}})
	require.NoError(t, err)
	return "Bearer " + token
}

func postGenerate(t *testing.T, router *gin.Engine, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, "/api/resume/generate", &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestGenerateEndpointSuccess(t *testing.T) {
	svc, _, logRepo := newTestService(&fakeLLM{text: validReply, tokens: intPtr(640)})
	router := newGenerateRouter(t, svc)

	resp := postGenerate(t, router, bearer(t, "google:1"), GenerateRequest{FormData: ptrForm(sampleForm())})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["resumeId"])
	assert.EqualValues(t, 640, body["tokensUsed"])
	assert.Contains(t, body, "latencyMs")
	assert.NotContains(t, body, "warnings")

	content := body["content"].(map[string]any)
	personal := content["personal"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", personal["name"])
	assert.Len(t, logRepo.List("google:1"), 1)
}

func TestGenerateEndpointUnauthenticated(t *testing.T) {
	gen := &fakeLLM{text: validReply}
	svc, resumeRepo, logRepo := newTestService(gen)
	router := newGenerateRouter(t, svc)

	resp := postGenerate(t, router, "", GenerateRequest{FormData: ptrForm(sampleForm())})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, resp)["error"])

	resp = postGenerate(t, router, "Bearer not-a-jwt", GenerateRequest{FormData: ptrForm(sampleForm())})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	assert.Empty(t, gen.prompt)
	assert.Empty(t, logRepo.List("google:1"))
	n, _ := resumeRepo.CountByUser(t.Context(), "google:1")
	assert.Zero(t, n)
}

func TestGenerateEndpointValidation(t *testing.T) {
	gen := &fakeLLM{text: validReply}
	svc, _, _ := newTestService(gen)
	router := newGenerateRouter(t, svc)
	token := bearer(t, "google:1")

	resp := postGenerate(t, router, token, "{not json")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, msgInvalidBody, decodeBody(t, resp)["error"])

	resp = postGenerate(t, router, token, `{}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	form := sampleForm()
	form.Personal.Name = ""
	resp = postGenerate(t, router, token, GenerateRequest{FormData: &form})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "personal.name is required", decodeBody(t, resp)["error"])

	assert.Empty(t, gen.prompt)
}

func TestGenerateEndpointFailureMessage(t *testing.T) {
	svc, _, logRepo := newTestService(&fakeLLM{text: "```\nnot json at all\n```"})
	router := newGenerateRouter(t, svc)

	resp := postGenerate(t, router, bearer(t, "google:1"), GenerateRequest{FormData: ptrForm(sampleForm())})
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	body := decodeBody(t, resp)
	assert.Equal(t, msgGenerateFailed, body["error"])
	assert.Len(t, body, 1)
	assert.False(t, strings.Contains(resp.Body.String(), "malformed"))

	logs := logRepo.List("google:1")
	require.Len(t, logs, 1)
	assert.Equal(t, "malformed_response", logs[0].ErrorCode)
}

func TestGenerateEndpointSaveWarning(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{text: validReply})
	svc.Resumes = failingResumes{}
	svc.Logs = failingLogs{}
	router := newGenerateRouter(t, svc)

	resp := postGenerate(t, router, bearer(t, "google:1"), GenerateRequest{FormData: ptrForm(sampleForm())})
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody(t, resp)
	assert.Nil(t, body["resumeId"])
	assert.Equal(t, []any{WarningResumeNotSaved}, body["warnings"])
}

func ptrForm(f model.BuilderForm) *model.BuilderForm { return &f }

func TestOptionsEndpointListsRegionsAndIndustries(t *testing.T) {
	svc, _, _ := newTestService(&fakeLLM{text: validReply})
	router := newGenerateRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/resume/options", nil)
	req.Header.Set("Authorization", bearer(t, "google:1"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body OptionsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"Asia", "EU", "MENA", "UK", "US"}, body.Regions)
	assert.Contains(t, body.Industries, "Technology")
	assert.Len(t, body.Industries, 8)
	assert.Equal(t, "US", body.DefaultRegion)
}
