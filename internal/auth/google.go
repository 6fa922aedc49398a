package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	sharedauth "resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/users"
)

const (
	// SubjectPrefix namespaces Google account ids in users.id and the JWT sub.
	SubjectPrefix = "google:"

	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// UserUpserter records the identity returned by Google.
type UserUpserter interface {
	UpsertFromAuth(ctx context.Context, user users.User) error
}

// GoogleService handles Google OAuth flows.
type GoogleService struct {
	oauthConfig *oauth2.Config
	uiRedirect  string
	stateTTL    time.Duration
	stateStore  *stateStore
	users       UserUpserter
	userInfoURL string
	now         func() time.Time
}

// NewGoogleService builds a GoogleService.
func NewGoogleService(clientID, clientSecret, redirectURL, uiRedirect string, userStore UserUpserter) *GoogleService {
	return &GoogleService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		uiRedirect:  uiRedirect,
		stateTTL:    5 * time.Minute,
		stateStore:  newStateStore(),
		users:       userStore,
		userInfoURL: defaultUserInfoURL,
		now:         time.Now,
	}
}

// RegisterRoutes attaches Google auth routes.
func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", s.start)
	rg.GET("/auth/google/callback", s.callback)
}

func (s *GoogleService) start(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.oauthConfig.ClientSecret == "" || s.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Google auth not configured", nil)
		return
	}

	state := uuid.NewString()
	now := s.now()
	s.stateStore.put(state, now.Add(s.stateTTL), now)

	c.Redirect(http.StatusFound, s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

func (s *GoogleService) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "missing state or code", nil)
		return
	}

	if !s.stateStore.consume(state, s.now()) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	oauthToken, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to exchange code", nil)
		return
	}

	userInfo, err := s.fetchUserInfo(ctx, oauthToken)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch user profile", map[string]any{"error": err.Error()})
		return
	}

	if userInfo.Sub == "" {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "invalid user profile", nil)
		return
	}

	userID := SubjectPrefix + userInfo.Sub
	if s.users != nil {
		err := s.users.UpsertFromAuth(ctx, users.User{
			ID:         userID,
			Email:      userInfo.Email,
			FullName:   userInfo.Name,
			PictureURL: userInfo.Picture,
		})
		if err != nil {
			telemetry.Error("auth.user_upsert_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	token, err := sharedauth.SignJWT(sharedauth.Claims{
		Email:            userInfo.Email,
		Name:             userInfo.Name,
		Picture:          userInfo.Picture,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	redirectURL, err := appendToken(s.uiRedirect, token)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redirect", nil)
		return
	}

	telemetry.Info("auth.login", map[string]any{"user_id": userID, "provider": "google"})
	c.Redirect(http.StatusFound, redirectURL)
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *GoogleService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return googleUserInfo{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}

	// Some responses use "id" instead of "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return info, nil
}

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

// put records state and drops entries that expired before now.
func (s *stateStore) put(state string, exp, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.items {
		if now.After(e) {
			delete(s.items, k)
		}
	}
	s.items[state] = exp
}

// consume reports whether state was issued and is unexpired. A state is single use.
func (s *stateStore) consume(state string, now time.Time) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	delete(s.items, state)
	s.mu.Unlock()
	return ok && !now.After(exp)
}

func (s *stateStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func appendToken(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
