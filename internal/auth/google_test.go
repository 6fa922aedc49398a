package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	sharedauth "resume-builder/internal/shared/auth"
	"resume-builder/internal/users"
)

func newGoogleRouter(svc *GoogleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc.RegisterRoutes(router.Group("/api"))
	return router
}

func TestGoogleStartRequiresConfig(t *testing.T) {
	router := newGoogleRouter(NewGoogleService("", "", "", "http://localhost:3000/auth", nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/auth/google/start", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestGoogleStartRedirectsWithState(t *testing.T) {
	svc := NewGoogleService("client", "secret", "http://localhost:8080/api/auth/google/callback", "http://localhost:3000/auth", nil)
	router := newGoogleRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/auth/google/start", nil))
	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	loc, err := url.Parse(resp.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	state := loc.Query().Get("state")
	if state == "" || !strings.Contains(loc.Host, "google") {
		t.Fatalf("unexpected redirect %s", loc)
	}
	if !svc.stateStore.consume(state, time.Now()) {
		t.Fatalf("expected state to be stored")
	}
}

func TestGoogleCallbackRejectsBadState(t *testing.T) {
	router := newGoogleRouter(NewGoogleService("client", "secret", "http://cb", "http://ui", nil))

	for _, target := range []string{
		"/api/auth/google/callback",
		"/api/auth/google/callback?state=unknown&code=abc",
	} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, resp.Code)
		}
	}
}

func TestStateStoreExpiry(t *testing.T) {
	now := time.Now()
	store := newStateStore()
	store.put("fresh", now.Add(time.Minute), now)
	store.put("stale", now.Add(-time.Minute), now.Add(-2*time.Minute))

	if !store.consume("fresh", now) {
		t.Fatalf("expected fresh state to be accepted")
	}
	if store.consume("fresh", now) {
		t.Fatalf("state must be single use")
	}
	if store.consume("stale", now) {
		t.Fatalf("expected stale state to be rejected")
	}
}

func TestStateStoreSweepsExpired(t *testing.T) {
	now := time.Now()
	store := newStateStore()
	store.put("old", now.Add(time.Minute), now)
	store.put("new", now.Add(10*time.Minute), now.Add(5*time.Minute))

	if store.len() != 1 {
		t.Fatalf("expected expired state to be swept, have %d", store.len())
	}
}

type recordingUpserter struct {
	mu    sync.Mutex
	users []users.User
}

func (r *recordingUpserter) UpsertFromAuth(_ context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return nil
}

func TestGoogleCallbackUpsertsUserAndIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
		case "/userinfo":
			if r.Header.Get("Authorization") != "Bearer at" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"1234","email":"ada@example.com","name":"Ada Lovelace","picture":"https://img/ada.png"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer provider.Close()

	upserter := &recordingUpserter{}
	svc := NewGoogleService("client", "secret", "http://localhost:8080/api/auth/google/callback", "http://localhost:3000/auth", upserter)
	svc.oauthConfig.Endpoint = oauth2.Endpoint{AuthURL: provider.URL + "/auth", TokenURL: provider.URL + "/token"}
	svc.userInfoURL = provider.URL + "/userinfo"
	svc.stateStore.put("s1", time.Now().Add(time.Minute), time.Now())
	router := newGoogleRouter(svc)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=s1&code=c1", nil))
	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", resp.Code, resp.Body.String())
	}

	loc, err := url.Parse(resp.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	claims, err := sharedauth.VerifyJWT(loc.Query().Get("token"))
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Subject != "google:1234" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if len(upserter.users) != 1 {
		t.Fatalf("expected one upsert, got %d", len(upserter.users))
	}
	if got := upserter.users[0]; got.ID != "google:1234" || got.FullName != "Ada Lovelace" || got.PictureURL != "https://img/ada.png" {
		t.Fatalf("unexpected upserted user %+v", got)
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("http://localhost:3000/auth?next=%2Fdashboard", "abc")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	u, _ := url.Parse(got)
	if u.Query().Get("token") != "abc" || u.Query().Get("next") != "/dashboard" {
		t.Fatalf("unexpected url %s", got)
	}
	if _, err := appendToken("", "abc"); err == nil {
		t.Fatalf("expected error for empty redirect")
	}
}
