package api

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/screen"
	"warehouse-dashboard/internal/session"
	"warehouse-dashboard/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SessionManager opens, resolves and closes dashboard sessions.
type SessionManager interface {
	SignIn(ctx context.Context, req models.SigninRequest, deviceID string) (*session.Session, string, *models.APIResponse[models.SigninResponse])
	Load(ctx context.Context, cookie string) (*session.Session, error)
	SignOut(ctx context.Context, cookie string)
	MaxAge() time.Duration
}

// StateStore keeps per-session screen state and the per-screen submit lock.
type StateStore interface {
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

// AccountActions are the auth operations behind the account pages.
type AccountActions interface {
	SignUp(ctx context.Context, req models.SignupRequest) *models.APIResponse[models.SignupResponse]
	ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) *models.APIResponse[models.Empty]
	ChangeRole(ctx context.Context, token string, req models.ChangeRoleRequest) *models.APIResponse[models.Empty]
}

type SummaryActions interface {
	Summary(ctx context.Context, token string) *models.APIResponse[models.DashboardSummary]
}

// ActivityReader reads the activity log. Optional.
type ActivityReader interface {
	ListRecentActivity(ctx context.Context, resource string, limit int) ([]models.ActivityEntry, error)
}

// Pinger is a dependency checked by /ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the HTTP surface.
type Options struct {
	CookieSecure bool
	StateTTL     time.Duration
	LockTTL      time.Duration
}

// Deps groups everything the handler talks to.
type Deps struct {
	Sessions  SessionManager
	State     StateStore
	Account   AccountActions
	Dashboard SummaryActions
	Activity  ActivityReader
	Ready     map[string]Pinger

	Products   *screen.ProductScreen
	Categories *screen.CategoryScreen
	Locations  *screen.LocationScreen
	Stocks     *screen.StockScreen
}

// Handler contains HTTP handlers
type Handler struct {
	deps   Deps
	opts   Options
	tmpl   *template.Template
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(deps Deps, opts Options) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if opts.StateTTL <= 0 {
		opts.StateTTL = time.Hour
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 30 * time.Second
	}
	return &Handler{
		deps:   deps,
		opts:   opts,
		tmpl:   tmpl,
		logger: util.Component("api"),
	}, nil
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(h.tmpl)

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(loggerMiddleware(h.logger))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard/") })

	web := router.Group("/")
	web.Use(deviceIDMiddleware(h.opts.CookieSecure))
	web.Use(sessionMiddleware(h.deps.Sessions, h.logger))
	web.Use(authGuard())
	{
		web.GET("/auth/signin", h.signInPage)
		web.POST("/auth/signin", h.signIn)
		web.GET("/auth/signup", h.signUpPage)
		web.POST("/auth/signup", h.signUp)
		web.POST("/auth/signout", h.signOut)

		dash := web.Group("/dashboard")
		{
			dash.GET("/", h.dashboard)
			dash.GET("/activity", h.activity)
			dash.GET("/account/password", h.passwordPage)
			dash.POST("/account/password", h.changePassword)
			dash.GET("/internal/role", h.rolePage)
			dash.POST("/internal/role", h.changeRole)

			mountScreen(h, dash, h.deps.Products)
			mountScreen(h, dash, h.deps.Categories)
			mountScreen(h, dash, h.deps.Locations)
			mountScreen(h, dash, h.deps.Stocks)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck pings every registered dependency
func (h *Handler) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	status := http.StatusOK
	for name, p := range h.deps.Ready {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	c.JSON(status, gin.H{
		"status": state,
		"checks": checks,
		"time":   time.Now().Unix(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			status,
		).Inc()
	}
}
