package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/redisclient"
	"warehouse-dashboard/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cookie names.
const (
	CookieName       = "dashboard_session"
	DeviceCookieName = "device_id"
)

// RefreshError marks a session whose access token could not be refreshed.
const RefreshError = "RefreshAccessTokenError"

var ErrNoSession = errors.New("session: no session")

// Session is the server-side state of a signed-in browser.
type Session struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"user_id"`
	Email              string              `json:"email"`
	Name               string              `json:"name"`
	Role               string              `json:"role"`
	AccessToken        string              `json:"access_token"`
	RefreshToken       string              `json:"refresh_token"`
	AccessTokenExpires time.Time           `json:"access_token_expires"`
	DeviceID           string              `json:"device_id"`
	User               models.UserResponse `json:"user"`
	Error              string              `json:"error,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

// Authenticated reports whether pages may use the session's access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != "" && s.Error == ""
}

// Store persists sessions. Implemented by redisclient.Client.
type Store interface {
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	Del(ctx context.Context, keys ...string) error
}

// Authenticator is the subset of the auth actions the manager drives.
type Authenticator interface {
	SignIn(ctx context.Context, req models.SigninRequest, deviceID string) *models.APIResponse[models.SigninResponse]
	RefreshToken(ctx context.Context, req models.RefreshTokenRequest, deviceID string) *models.APIResponse[models.RefreshResponse]
	SignOut(ctx context.Context, refreshToken string) *models.APIResponse[models.Empty]
}

type Config struct {
	Secret         string
	MaxAge         time.Duration
	AccessTokenTTL time.Duration
	// RefreshEnabled turns on refreshing expired access tokens when a session is loaded.
	RefreshEnabled bool
}

// Manager creates, loads and destroys sessions
type Manager struct {
	store  Store
	auth   Authenticator
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// NewManager creates a new session manager
func NewManager(store Store, auth Authenticator, cfg Config) *Manager {
	return &Manager{
		store:  store,
		auth:   auth,
		cfg:    cfg,
		logger: util.Component("session"),
		now:    time.Now,
	}
}

// MaxAge is the lifetime of the session cookie.
func (m *Manager) MaxAge() time.Duration {
	return m.cfg.MaxAge
}

func key(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// SignIn authenticates against the backend and opens a session. The returned
// cookie value is empty unless the envelope is a success.
func (m *Manager) SignIn(ctx context.Context, req models.SigninRequest, deviceID string) (*Session, string, *models.APIResponse[models.SigninResponse]) {
	ctx, span := util.StartSpan(ctx, "Manager.SignIn")
	defer span.End()

	resp := m.auth.SignIn(ctx, req, deviceID)
	if !resp.OK() || resp.Payload.Data.AccessToken == "" {
		util.SignInsTotal.WithLabelValues("rejected").Inc()
		if resp.OK() {
			return nil, "", models.Unexpected[models.SigninResponse]()
		}
		return nil, "", resp
	}

	data := resp.Payload.Data
	now := m.now()
	sess := &Session{
		ID:                 uuid.New().String(),
		UserID:             data.User.ID,
		Email:              data.User.Email,
		Name:               data.User.Email,
		Role:               data.User.Status,
		AccessToken:        data.AccessToken,
		RefreshToken:       data.RefreshToken,
		AccessTokenExpires: now.Add(m.cfg.AccessTokenTTL),
		DeviceID:           deviceID,
		User:               data.User,
		CreatedAt:          now,
	}

	if err := m.store.SetJSON(ctx, key(sess.ID), sess, m.cfg.MaxAge); err != nil {
		m.logger.Error("Failed to persist session", zap.String("user_id", sess.UserID), zap.Error(err))
		util.SignInsTotal.WithLabelValues("error").Inc()
		return nil, "", models.Unexpected[models.SigninResponse]()
	}

	cookie, err := mintCookie(m.cfg.Secret, sess, now, m.cfg.MaxAge)
	if err != nil {
		m.logger.Error("Failed to mint session cookie", zap.Error(err))
		util.SignInsTotal.WithLabelValues("error").Inc()
		return nil, "", models.Unexpected[models.SigninResponse]()
	}

	util.SignInsTotal.WithLabelValues("success").Inc()
	m.logger.Info("Session opened",
		zap.String("session_id", sess.ID),
		zap.String("user_id", sess.UserID))

	return sess, cookie, resp
}

// Load resolves a cookie value to its session. ErrNoSession covers a missing,
// invalid or expired cookie as well as a session evicted from the store.
func (m *Manager) Load(ctx context.Context, cookie string) (*Session, error) {
	if cookie == "" {
		return nil, ErrNoSession
	}

	id, err := parseCookie(m.cfg.Secret, cookie, m.now())
	if err != nil {
		m.logger.Debug("Rejected session cookie", zap.Error(err))
		return nil, ErrNoSession
	}

	var sess Session
	if err := m.store.GetJSON(ctx, key(id), &sess); err != nil {
		if errors.Is(err, redisclient.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if m.cfg.RefreshEnabled && sess.Error == "" && !m.now().Before(sess.AccessTokenExpires) {
		m.refresh(ctx, &sess)
	}

	return &sess, nil
}

// refresh swaps an expired access token. Failure marks the session with
// RefreshError; the stale tokens are kept.
func (m *Manager) refresh(ctx context.Context, sess *Session) {
	ctx, span := util.StartSpan(ctx, "Manager.refresh")
	defer span.End()

	resp := m.auth.RefreshToken(ctx, models.RefreshTokenRequest{RefreshToken: sess.RefreshToken}, sess.DeviceID)
	if !resp.OK() {
		util.SessionRefreshTotal.WithLabelValues("error").Inc()
		m.logger.Warn("Access token refresh failed",
			zap.String("session_id", sess.ID),
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", resp.Message))
		sess.Error = RefreshError
	} else {
		util.SessionRefreshTotal.WithLabelValues("success").Inc()
		if resp.Payload.Data.AccessToken != "" {
			sess.AccessToken = resp.Payload.Data.AccessToken
		}
		if resp.Payload.Data.RefreshToken != "" {
			sess.RefreshToken = resp.Payload.Data.RefreshToken
		}
		sess.AccessTokenExpires = m.now().Add(m.cfg.AccessTokenTTL)
	}

	ttl := m.cfg.MaxAge - m.now().Sub(sess.CreatedAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := m.store.SetJSON(ctx, key(sess.ID), sess, ttl); err != nil {
		m.logger.Error("Failed to persist refreshed session", zap.String("session_id", sess.ID), zap.Error(err))
	}
}

// SignOut destroys the session behind cookie and revokes its refresh token.
// It is a no-op without a session or tokens, and backend failures are only logged.
func (m *Manager) SignOut(ctx context.Context, cookie string) {
	ctx, span := util.StartSpan(ctx, "Manager.SignOut")
	defer span.End()

	if cookie == "" {
		return
	}
	id, err := parseCookie(m.cfg.Secret, cookie, m.now())
	if err != nil {
		return
	}

	var sess Session
	if err := m.store.GetJSON(ctx, key(id), &sess); err != nil {
		if !errors.Is(err, redisclient.ErrNotFound) {
			m.logger.Warn("Failed to load session on sign-out", zap.Error(err))
		}
		return
	}

	if err := m.store.Del(ctx, key(id)); err != nil {
		m.logger.Warn("Failed to delete session", zap.String("session_id", id), zap.Error(err))
	}
	util.SignOutsTotal.Inc()

	if sess.AccessToken == "" || sess.RefreshToken == "" {
		return
	}

	resp := m.auth.SignOut(ctx, sess.RefreshToken)
	if !resp.OK() {
		m.logger.Warn("Logout event failed",
			zap.String("session_id", id),
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", resp.Message))
		return
	}
	m.logger.Info("Session closed", zap.String("session_id", id), zap.String("user_id", sess.UserID))
}
