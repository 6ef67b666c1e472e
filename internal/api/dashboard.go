package api

import (
	"net/http"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/screen"
	"warehouse-dashboard/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) dashboard(c *gin.Context) {
	resp := h.deps.Dashboard.Summary(c.Request.Context(), accessToken(c))
	if !resp.OK() {
		h.renderError(c, resp.StatusCode, resp.Message)
		return
	}
	h.render(c, http.StatusOK, "dashboard.tmpl", "Dashboard", "dashboard", nil, resp.Payload.Data)
}

type activityContent struct {
	Resource  string
	Resources []string
	Entries   []models.ActivityEntry
	Available bool
}

func (h *Handler) activity(c *gin.Context) {
	content := activityContent{
		Resource: c.Query("resource"),
		Resources: []string{
			models.ResourceProducts,
			models.ResourceCategories,
			models.ResourceLocations,
			models.ResourceStocks,
		},
		Available: h.deps.Activity != nil,
	}
	if !content.Available {
		h.render(c, http.StatusOK, "activity.tmpl", "Activity", "activity", nil, content)
		return
	}

	entries, err := h.deps.Activity.ListRecentActivity(c.Request.Context(), content.Resource, store.DefaultActivityLimit)
	if err != nil {
		h.logger.Error("Failed to list activity", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Could not load the activity log")
		return
	}
	content.Entries = entries
	h.render(c, http.StatusOK, "activity.tmpl", "Activity", "activity", nil, content)
}

var (
	passwordFields = map[string]screen.FieldConfig{
		"old_password": {Label: "Current Password", Placeholder: "Enter your current password"},
		"new_password": {Label: "New Password", Placeholder: "At least 8 characters"},
	}
	roleFields = map[string]screen.FieldConfig{
		"role": {Label: "Role", Description: "Role granted to your account"},
	}
)

func passwordForm(errs map[string]string) formContent {
	return formContent{
		Heading:     "Change password",
		Action:      "/dashboard/account/password",
		SubmitLabel: "Save Changes",
		Fields:      screen.WithValues(screen.DeriveFields(models.ChangePasswordRequest{}, passwordFields), nil, errs),
	}
}

func roleForm(values, errs map[string]string) formContent {
	return formContent{
		Heading:     "Change role",
		Description: "Restricted to administrators",
		Action:      "/dashboard/internal/role",
		SubmitLabel: "Save Changes",
		Fields:      screen.WithValues(screen.DeriveFields(models.ChangeRoleRequest{}, roleFields), values, errs),
	}
}

func (h *Handler) passwordPage(c *gin.Context) {
	h.render(c, http.StatusOK, "form.tmpl", "Change password", "", nil, passwordForm(nil))
}

func (h *Handler) changePassword(c *gin.Context) {
	form, ok := h.postForm(c)
	if !ok {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Change password", "", malformedFormToast(), passwordForm(nil))
		return
	}
	req, errs := screen.Bind[models.ChangePasswordRequest](form)
	if errs != nil {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Change password", "",
			&screen.Toast{Kind: screen.ToastError, Message: models.MessageValidationFailed, Errors: errs},
			passwordForm(screen.ErrorMap(errs)))
		return
	}

	resp := h.deps.Account.ChangePassword(c.Request.Context(), accessToken(c), req)
	status := http.StatusOK
	if !resp.OK() {
		status = httpStatus(resp.StatusCode)
	}
	h.render(c, status, "form.tmpl", "Change password", "",
		toastFrom(resp, "Password changed"),
		passwordForm(screen.ErrorMap(resp.Payload.Errors)))
}

func (h *Handler) rolePage(c *gin.Context) {
	values := map[string]string{}
	if sess := currentSession(c); sess != nil {
		values["role"] = sess.Role
	}
	h.render(c, http.StatusOK, "form.tmpl", "Change role", "", nil, roleForm(values, nil))
}

func (h *Handler) changeRole(c *gin.Context) {
	form, ok := h.postForm(c)
	if !ok {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Change role", "", malformedFormToast(), roleForm(nil, nil))
		return
	}
	values := screen.FormValues(form)
	req, errs := screen.Bind[models.ChangeRoleRequest](form)
	if errs != nil {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Change role", "",
			&screen.Toast{Kind: screen.ToastError, Message: models.MessageValidationFailed, Errors: errs},
			roleForm(values, screen.ErrorMap(errs)))
		return
	}

	resp := h.deps.Account.ChangeRole(c.Request.Context(), accessToken(c), req)
	status := http.StatusOK
	if !resp.OK() {
		status = httpStatus(resp.StatusCode)
	}
	h.render(c, status, "form.tmpl", "Change role", "",
		toastFrom(resp, "Role changed"),
		roleForm(values, screen.ErrorMap(resp.Payload.Errors)))
}
