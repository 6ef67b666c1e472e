package api

import (
	"net/http"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/screen"
	"warehouse-dashboard/internal/session"

	"github.com/gin-gonic/gin"
)

// formContent renders a standalone form page.
type formContent struct {
	Heading     string
	Description string
	Action      string
	SubmitLabel string
	Fields      []screen.Field
	AltText     string
	AltHref     string
	AltLabel    string
}

var (
	signInFields = map[string]screen.FieldConfig{
		"email":    {Label: "Email", Placeholder: "you@example.com"},
		"password": {Label: "Password", Placeholder: "Enter your password"},
	}
	signUpFields = map[string]screen.FieldConfig{
		"email":     {Label: "Email", Placeholder: "you@example.com"},
		"password":  {Label: "Password", Placeholder: "At least 8 characters"},
		"full_name": {Label: "Full Name", Placeholder: "Enter your full name"},
	}
)

func signInForm(values, errs map[string]string) formContent {
	return formContent{
		Heading:     "Sign in",
		Description: "Sign in to manage your warehouse inventory",
		Action:      "/auth/signin",
		SubmitLabel: "Sign In",
		Fields:      screen.WithValues(screen.DeriveFields(models.SigninRequest{}, signInFields), withoutPasswords(values), errs),
		AltText:     "Don't have an account?",
		AltHref:     "/auth/signup",
		AltLabel:    "Sign up",
	}
}

func signUpForm(values, errs map[string]string) formContent {
	return formContent{
		Heading:     "Create an account",
		Description: "Register a new dashboard user",
		Action:      "/auth/signup",
		SubmitLabel: "Sign Up",
		Fields:      screen.WithValues(screen.DeriveFields(models.SignupRequest{}, signUpFields), withoutPasswords(values), errs),
		AltText:     "Already have an account?",
		AltHref:     "/auth/signin",
		AltLabel:    "Sign in",
	}
}

// withoutPasswords keeps submitted passwords out of re-rendered forms.
func withoutPasswords(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if k == "password" || k == "old_password" || k == "new_password" {
			continue
		}
		out[k] = v
	}
	return out
}

func (h *Handler) signInPage(c *gin.Context) {
	h.render(c, http.StatusOK, "form.tmpl", "Sign in", "", nil, signInForm(nil, nil))
}

func (h *Handler) signIn(c *gin.Context) {
	form, ok := h.postForm(c)
	if !ok {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Sign in", "", malformedFormToast(), signInForm(nil, nil))
		return
	}
	values := screen.FormValues(form)

	req, errs := screen.Bind[models.SigninRequest](form)
	if errs != nil {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Sign in", "",
			&screen.Toast{Kind: screen.ToastError, Message: models.MessageValidationFailed, Errors: errs},
			signInForm(values, screen.ErrorMap(errs)))
		return
	}

	_, cookie, resp := h.deps.Sessions.SignIn(c.Request.Context(), req, deviceID(c))
	if !resp.OK() || cookie == "" {
		h.render(c, httpStatus(resp.StatusCode), "form.tmpl", "Sign in", "",
			toastFrom(resp, ""),
			signInForm(values, screen.ErrorMap(resp.Payload.Errors)))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, cookie, int(h.deps.Sessions.MaxAge().Seconds()), "/", "", h.opts.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/dashboard/")
}

func (h *Handler) signUpPage(c *gin.Context) {
	h.render(c, http.StatusOK, "form.tmpl", "Sign up", "", nil, signUpForm(nil, nil))
}

func (h *Handler) signUp(c *gin.Context) {
	form, ok := h.postForm(c)
	if !ok {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Sign up", "", malformedFormToast(), signUpForm(nil, nil))
		return
	}
	values := screen.FormValues(form)

	req, errs := screen.Bind[models.SignupRequest](form)
	if errs != nil {
		h.render(c, http.StatusBadRequest, "form.tmpl", "Sign up", "",
			&screen.Toast{Kind: screen.ToastError, Message: models.MessageValidationFailed, Errors: errs},
			signUpForm(values, screen.ErrorMap(errs)))
		return
	}

	resp := h.deps.Account.SignUp(c.Request.Context(), req)
	if !resp.OK() {
		h.render(c, httpStatus(resp.StatusCode), "form.tmpl", "Sign up", "",
			toastFrom(resp, ""),
			signUpForm(values, screen.ErrorMap(resp.Payload.Errors)))
		return
	}

	h.render(c, http.StatusOK, "form.tmpl", "Sign in", "",
		toastFrom(resp, "Account created, you can sign in now"),
		signInForm(map[string]string{"email": resp.Payload.Data.Email}, nil))
}

// signOut always ends on the sign-in page, whatever the backend said.
func (h *Handler) signOut(c *gin.Context) {
	cookie, _ := c.Cookie(session.CookieName)
	h.deps.Sessions.SignOut(c.Request.Context(), cookie)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", h.opts.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/auth/signin")
}
