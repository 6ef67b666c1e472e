package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/screen"
	"warehouse-dashboard/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"initials":   screen.Initials,
	"truncate":   screen.Truncate,
	"capitalize": screen.Capitalize,
	"label":      screen.Label,
	"fallback":   screen.Fallback,
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return screen.EmptyCell
		}
		return t.Local().Format(screen.DateTimeLayout)
	},
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("dashboard").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

type navItem struct {
	Key   string
	Label string
	Href  string
}

var mainNav = []navItem{
	{Key: "dashboard", Label: "Dashboard", Href: "/dashboard/"},
	{Key: models.ResourceProducts, Label: "Products", Href: "/dashboard/products"},
	{Key: models.ResourceCategories, Label: "Categories", Href: "/dashboard/categories"},
	{Key: models.ResourceLocations, Label: "Locations", Href: "/dashboard/locations"},
	{Key: models.ResourceStocks, Label: "Stocks", Href: "/dashboard/stocks"},
	{Key: "activity", Label: "Activity", Href: "/dashboard/activity"},
}

// view is the data every page template receives.
type view struct {
	Title     string
	Active    string
	Nav       []navItem
	Session   *session.Session
	Toast     *screen.Toast
	RequestID string
	Content   any
}

func (h *Handler) render(c *gin.Context, status int, name, title, active string, toast *screen.Toast, content any) {
	c.HTML(status, name, view{
		Title:     title,
		Active:    active,
		Nav:       mainNav,
		Session:   currentSession(c),
		Toast:     toast,
		RequestID: c.GetString(requestIDKey),
		Content:   content,
	})
}

type errorContent struct {
	StatusCode int
	Message    string
}

func (h *Handler) renderError(c *gin.Context, statusCode int, message string) {
	status := httpStatus(statusCode)
	h.render(c, status, "error.tmpl", "Something went wrong", "", nil, errorContent{
		StatusCode: status,
		Message:    screen.Fallback(message, models.MessageUnexpected),
	})
}

// httpStatus turns an envelope status code into a response status for an
// error page. Anything outside 4xx/5xx becomes a 500.
func httpStatus(code int) int {
	if code >= http.StatusBadRequest && code < 600 {
		return code
	}
	return http.StatusInternalServerError
}

func toastFrom[T any](resp *models.APIResponse[T], fallback string) *screen.Toast {
	if resp.OK() {
		return &screen.Toast{Kind: screen.ToastSuccess, Message: screen.Fallback(resp.Message, fallback)}
	}
	return &screen.Toast{
		Kind:    screen.ToastError,
		Message: screen.Fallback(resp.Message, models.MessageUnexpected),
		Errors:  resp.Payload.Errors,
	}
}

// MessageMalformedForm is shown when a request body cannot be parsed as a form.
const MessageMalformedForm = "The submitted form could not be read"

// postForm parses the request body. ok is false when the body is malformed.
func (h *Handler) postForm(c *gin.Context) (url.Values, bool) {
	if err := c.Request.ParseForm(); err != nil {
		h.logger.Warn("Malformed form body",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		return nil, false
	}
	return c.Request.PostForm, true
}

func malformedFormToast() *screen.Toast {
	return &screen.Toast{Kind: screen.ToastError, Message: MessageMalformedForm}
}
