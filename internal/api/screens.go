package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/pagination"
	"warehouse-dashboard/internal/redisclient"
	"warehouse-dashboard/internal/screen"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MessageSubmitInProgress = "Another change to this list is still in progress"

// screenContent is the data of screen.tmpl.
type screenContent struct {
	Name        string
	Title       string
	Description string
	AddLabel    string
	BasePath    string
	Page        int
	Limit       int

	Table      screen.Table
	Drawer     *screen.Drawer
	Pagination pagination.Control
}

func (s screenContent) pageHref(page int) string {
	return fmt.Sprintf("%s?page=%d&limit=%d", s.BasePath, page, s.Limit)
}

// ActionHref opens the drawer for mode on the current page.
func (s screenContent) ActionHref(mode, id string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(s.Page))
	q.Set("limit", strconv.Itoa(s.Limit))
	q.Set("op", mode)
	if id != "" {
		q.Set("id", id)
	}
	return s.BasePath + "?" + q.Encode()
}

// CloseHref closes the drawer without refetching the list.
func (s screenContent) CloseHref() string {
	return s.pageHref(s.Page)
}

func stateKey(sessionID, resource string) string {
	return fmt.Sprintf("screen:%s:%s", sessionID, resource)
}

// pageParams reads page and limit, falling back to the defaults for missing
// or malformed values.
func pageParams(get func(string) string) (page, limit int) {
	page, _ = strconv.Atoi(get("page"))
	limit, _ = strconv.Atoi(get("limit"))
	if page < 1 {
		page = models.DefaultPage
	}
	if limit < 1 {
		limit = models.DefaultLimit
	}
	return page, min(limit, models.MaxLimit)
}

func mountScreen[C, U, D any, L models.Identifiable, Q any](h *Handler, group *gin.RouterGroup, res *screen.Resource[C, U, D, L, Q]) {
	if res == nil {
		return
	}
	base := "/" + res.Name
	group.GET(base, func(c *gin.Context) { screenPage(h, c, res) })
	group.POST(base+"/submit", func(c *gin.Context) { screenSubmit(h, c, res) })
}

// screenPage renders the table. A plain visit runs the list call and seeds
// the session's state; opening the drawer reuses the stored state of the
// same page.
func screenPage[C, U, D any, L models.Identifiable, Q any](h *Handler, c *gin.Context, res *screen.Resource[C, U, D, L, Q]) {
	ctx := c.Request.Context()
	page, limit := pageParams(c.Query)
	key := stateKey(currentSession(c).ID, res.Name)

	var toast *screen.Toast
	var state *screen.ListState[L]
	if c.Query("op") != "" {
		state = loadState[L](h, ctx, key, page, limit)
	}
	if state == nil {
		var resp *models.APIResponse[[]L]
		state, resp = res.Load(ctx, accessToken(c), page, limit)
		if resp.OK() {
			h.saveState(ctx, key, state)
		} else {
			toast = toastFrom(resp, "")
		}
	}

	var drawer *screen.Drawer
	if raw := c.Query("op"); raw != "" {
		mode, ok := screen.ParseMode(raw)
		if ok {
			drawer, ok = res.Drawer(screen.Operation{Mode: mode, ID: c.Query("id")}, state)
		}
		if !ok && toast == nil {
			toast = &screen.Toast{Kind: screen.ToastError, Message: fmt.Sprintf("%s not found on this page", res.Singular)}
		}
	}

	renderScreen(h, c, http.StatusOK, res, state, drawer, toast)
}

// screenSubmit runs one create, edit or delete against the backend and
// patches the stored state. Only one submit per screen and session runs at a
// time, and the state is read only once the lock is held.
func screenSubmit[C, U, D any, L models.Identifiable, Q any](h *Handler, c *gin.Context, res *screen.Resource[C, U, D, L, Q]) {
	ctx := c.Request.Context()
	key := stateKey(currentSession(c).ID, res.Name)

	form, ok := h.postForm(c)
	if !ok {
		page, limit := pageParams(c.Query)
		state, _ := currentState(h, c, res, key, page, limit)
		renderScreen(h, c, http.StatusBadRequest, res, state, nil, malformedFormToast())
		return
	}
	page, limit := pageParams(form.Get)

	mode, ok := screen.ParseMode(form.Get("mode"))
	if !ok {
		state, _ := currentState(h, c, res, key, page, limit)
		renderScreen(h, c, http.StatusBadRequest, res, state, nil,
			&screen.Toast{Kind: screen.ToastError, Message: "Unknown operation"})
		return
	}
	op := screen.Operation{Mode: mode, ID: form.Get("id")}

	lockToken := uuid.New().String()
	acquired, err := h.deps.State.AcquireLock(ctx, key, lockToken, h.opts.LockTTL)
	if err != nil {
		h.logger.Error("Failed to acquire screen lock", zap.String("key", key), zap.Error(err))
		state, _ := currentState(h, c, res, key, page, limit)
		renderScreen(h, c, http.StatusInternalServerError, res, state, nil,
			&screen.Toast{Kind: screen.ToastError, Message: models.MessageUnexpected})
		return
	}
	if !acquired {
		state, _ := currentState(h, c, res, key, page, limit)
		drawer, _ := res.Drawer(op, state)
		renderScreen(h, c, http.StatusConflict, res, state, drawer,
			&screen.Toast{Kind: screen.ToastError, Message: MessageSubmitInProgress})
		return
	}
	defer func() {
		if err := h.deps.State.ReleaseLock(context.WithoutCancel(ctx), key, lockToken); err != nil {
			h.logger.Warn("Failed to release screen lock", zap.String("key", key), zap.Error(err))
		}
	}()

	state, resp := currentState(h, c, res, key, page, limit)
	if resp != nil && !resp.OK() {
		renderScreen(h, c, httpStatus(resp.StatusCode), res, state, nil, toastFrom(resp, ""))
		return
	}

	toast, drawer := res.Submit(ctx, accessToken(c), state, op, form)
	if toast.OK() {
		h.saveState(ctx, key, state)
	}
	renderScreen(h, c, screen.StatusFor(toast), res, state, drawer, &toast)
}

// currentState returns the stored state of the page, seeding it from the
// list call when none is stored. resp is nil when the stored state was used.
func currentState[C, U, D any, L models.Identifiable, Q any](h *Handler, c *gin.Context, res *screen.Resource[C, U, D, L, Q], key string, page, limit int) (*screen.ListState[L], *models.APIResponse[[]L]) {
	ctx := c.Request.Context()
	if state := loadState[L](h, ctx, key, page, limit); state != nil {
		return state, nil
	}
	state, resp := res.Load(ctx, accessToken(c), page, limit)
	if resp.OK() {
		h.saveState(ctx, key, state)
	}
	return state, resp
}

func (h *Handler) saveState(ctx context.Context, key string, state any) {
	if err := h.deps.State.SetJSON(ctx, key, state, h.opts.StateTTL); err != nil {
		h.logger.Warn("Failed to save screen state", zap.String("key", key), zap.Error(err))
	}
}

// loadState returns the stored state when it belongs to the requested page.
func loadState[L models.Identifiable](h *Handler, ctx context.Context, key string, page, limit int) *screen.ListState[L] {
	var state screen.ListState[L]
	if err := h.deps.State.GetJSON(ctx, key, &state); err != nil {
		if !errors.Is(err, redisclient.ErrNotFound) {
			h.logger.Warn("Failed to load screen state", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	if state.Page != page || state.Limit != limit {
		return nil
	}
	if state.Items == nil {
		state.Items = []L{}
	}
	return &state
}

func renderScreen[C, U, D any, L models.Identifiable, Q any](h *Handler, c *gin.Context, status int, res *screen.Resource[C, U, D, L, Q], state *screen.ListState[L], drawer *screen.Drawer, toast *screen.Toast) {
	h.render(c, status, "screen.tmpl", res.Title, res.Name, toast, buildScreenContent(res, state, drawer))
}

func buildScreenContent[C, U, D any, L models.Identifiable, Q any](res *screen.Resource[C, U, D, L, Q], state *screen.ListState[L], drawer *screen.Drawer) screenContent {
	content := screenContent{
		Name:        res.Name,
		Title:       res.Title,
		Description: res.Description,
		AddLabel:    res.AddLabel,
		BasePath:    "/dashboard/" + res.Name,
		Page:        state.Page,
		Limit:       state.Limit,
		Table:       res.Table(state),
		Drawer:      drawer,
	}
	content.Pagination = pagination.New(state.Pagination, state.Page, state.Limit, content.pageHref)
	content.Pagination.Rows = len(state.Items)
	return content
}
