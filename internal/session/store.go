package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/RouckBlankOo/AdminDashboardImmo/config"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/dto"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/errs"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/httpclient"
	"github.com/RouckBlankOo/AdminDashboardImmo/pkg/utils"
	"github.com/rs/zerolog/log"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Store owns the current session: the bearer token and the user it belongs
// to. State lives in memory and is written through to the configured Storage.
type Store struct {
	storage Storage
	client  *httpclient.Client
	conf    *config.Config

	mu      sync.RWMutex
	current *domain.Session
}

func NewStore(storage Storage, client *httpclient.Client, conf *config.Config) *Store {
	return &Store{storage: storage, client: client, conf: conf}
}

// Load restores a persisted session at startup, if one exists.
func (s *Store) Load(ctx context.Context) error {
	token, found, err := s.storage.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	if !found || token == "" {
		return nil
	}

	session := domain.Session{Token: token}
	if userJSON, ok, err := s.storage.Get(ctx, userKey); err == nil && ok {
		if err := json.Unmarshal([]byte(userJSON), &session.User); err != nil {
			log.Error().Err(err).Str("component", "Load").Msg("")
		}
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	return nil
}

// Login authenticates against the remote API and persists the issued token.
// When the endpoint is unreachable or rejects the call, the configured dev
// fallback credentials still open a locally signed session.
func (s *Store) Login(ctx context.Context, email string, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return &errs.ValidationError{Message: "Veuillez remplir tous les champs"}
	}

	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	resp, err := s.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    s.conf.APIBaseURL + "/auth/login",
		Method: http.MethodPost,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Err(err).Str("component", "Login").Msg("remote auth unavailable, trying fallback credentials")
		return s.fallbackLogin(ctx, email, password)
	}

	var authResp dto.AuthResponse
	if err := json.Unmarshal(resp.Body, &authResp); err != nil {
		return errs.ErrAuthentication
	}
	if authResp.Token == "" {
		return errs.ErrAuthentication
	}

	return s.persist(ctx, domain.Session{Token: authResp.Token, User: authResp.User})
}

func (s *Store) fallbackLogin(ctx context.Context, email string, password string) error {
	fallback := s.conf.FallbackConfig
	if email != fallback.AdminEmail || password != fallback.AdminPassword {
		return errs.ErrAuthentication
	}

	token, err := utils.CreateSessionToken("admin123", "admin", s.conf.JWTSecret)
	if err != nil {
		return err
	}

	return s.persist(ctx, domain.Session{
		Token: token,
		User:  domain.User{UserID: "admin123", Role: "admin"},
	})
}

func (s *Store) persist(ctx context.Context, session domain.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return err
	}

	if err := s.storage.Set(ctx, tokenKey, session.Token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, userKey, string(userJSON)); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	return nil
}

// Logout clears the persisted session. Calling it with no active session is a
// no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return s.storage.Delete(ctx, tokenKey, userKey)
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token satisfies httpclient.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.User{}, false
	}
	return s.current.User, true
}
