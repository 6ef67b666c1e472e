package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/session"
	"warehouse-dashboard/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	deviceIDKey  = "device_id"
	sessionKey   = "session"

	deviceCookieMaxAge = 365 * 24 * time.Hour
)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if sess := currentSession(c); sess != nil {
			fields = append(fields, zap.String("user_id", sess.UserID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("Request served", fields...)
		case c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics":
			logger.Debug("Request served", fields...)
		default:
			logger.Info("Request served", fields...)
		}
	}
}

// deviceIDMiddleware makes sure every browser carries a device id cookie.
func deviceIDMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(session.DeviceCookieName)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.DeviceCookieName, id, int(deviceCookieMaxAge.Seconds()), "/", "", secure, true)
		}
		c.Set(deviceIDKey, id)
		c.Next()
	}
}

// sessionMiddleware resolves the session cookie and tags the request context
// with the signed-in user.
func sessionMiddleware(sessions SessionManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(session.CookieName)
		sess, err := sessions.Load(c.Request.Context(), cookie)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				logger.Error("Failed to load session",
					zap.String("request_id", c.GetString(requestIDKey)),
					zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(util.WithActor(c.Request.Context(), sess.Email))
		c.Next()
	}
}

// authGuard applies the redirect rules of the dashboard:
// signed-in users are kept off the auth pages, anonymous users off the
// dashboard, and plain users off the internal pages.
func authGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		sess := currentSession(c)
		authed := sess.Authenticated()

		switch {
		case authed && (path == "/auth/signin" || path == "/auth/signup"):
			c.Redirect(http.StatusFound, "/dashboard/")
			c.Abort()
			return
		case !authed && strings.HasPrefix(path, "/dashboard"):
			c.Redirect(http.StatusFound, "/auth/signin")
			c.Abort()
			return
		case authed && strings.Contains(path, "/dashboard/internal") && sess.Role == models.RoleUser:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

func deviceID(c *gin.Context) string {
	return c.GetString(deviceIDKey)
}

// accessToken is empty for anonymous requests and for sessions whose refresh failed.
func accessToken(c *gin.Context) string {
	sess := currentSession(c)
	if !sess.Authenticated() {
		return ""
	}
	return sess.AccessToken
}
