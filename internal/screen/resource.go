package screen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/repository"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is the one-shot notification shown after a submit.
type Toast struct {
	Kind    string               `json:"kind"`
	Message string               `json:"message"`
	Errors  []models.ErrorDetail `json:"errors,omitempty"`
}

func (t Toast) OK() bool { return t.Kind == ToastSuccess }

// Drawer is the render-ready form panel for the current operation.
type Drawer struct {
	Mode        Mode
	ID          string
	Title       string
	Description string
	SubmitLabel string
	Fields      []Field
}

// Resource ties one backend resource to its table and drawer. C and U are
// the create and update requests, D the detail projection, L the table row
// and Q the list query.
type Resource[C, U, D any, L models.Identifiable, Q any] struct {
	Name        string
	Singular    string
	Title       string
	Description string
	AddLabel    string

	// Optional drawer texts; derived from Singular when empty.
	DrawerDescription string
	DeletePrompt      string

	Columns      []Column[L]
	CreateFields map[string]FieldConfig
	UpdateFields map[string]FieldConfig

	// EditDefaults returns the current values of the editable fields of row.
	EditDefaults func(row L) map[string]string
	FromDetail   func(D) L
	Merge        func(row L, detail D) L
	Query        func(page, limit int) Q

	Backend repository.Repository[C, U, D, L, Q]
	Logger  *zap.Logger
}

// Load fetches one page and seeds the list state from it.
func (r *Resource[C, U, D, L, Q]) Load(ctx context.Context, token string, page, limit int) (*ListState[L], *models.APIResponse[[]L]) {
	resp := r.Backend.List(ctx, token, r.Query(page, limit))
	return NewListState(resp, page, limit), resp
}

// Table renders the current state.
func (r *Resource[C, U, D, L, Q]) Table(state *ListState[L]) Table {
	return BuildTable(r.Columns, state.Items)
}

// Drawer builds the drawer for op. Edit and delete need the row to be in
// state; ok is false otherwise.
func (r *Resource[C, U, D, L, Q]) Drawer(op Operation, state *ListState[L]) (*Drawer, bool) {
	thing := strings.ToLower(r.Singular)
	d := &Drawer{
		Mode:        op.Mode,
		ID:          op.ID,
		Description: Fallback(r.DrawerDescription, fmt.Sprintf("Manage %s details", thing)),
	}

	switch op.Mode {
	case ModeCreate:
		var schema C
		d.Title = "Add " + r.Singular
		d.SubmitLabel = r.AddLabel
		d.Fields = DeriveFields(schema, r.CreateFields)
	case ModeEdit:
		row, ok := state.Find(op.ID)
		if !ok {
			return nil, false
		}
		var schema U
		d.Title = "Edit " + r.Singular
		d.SubmitLabel = "Save Changes"
		d.Fields = WithValues(DeriveFields(schema, r.UpdateFields), r.EditDefaults(row), nil)
	case ModeDelete:
		if _, ok := state.Find(op.ID); !ok {
			return nil, false
		}
		d.Title = "Delete " + r.Singular
		d.Description = Fallback(r.DeletePrompt, fmt.Sprintf("Are you sure you want to delete this %s?", thing))
		d.SubmitLabel = "Confirm Delete"
	default:
		return nil, false
	}
	return d, true
}

// Submit runs op against the backend and patches state by id on success:
// create appends one row, edit merges the returned detail into the row,
// delete removes the row. Nothing is refetched. On failure the returned
// drawer is re-opened with the submitted values and field errors.
func (r *Resource[C, U, D, L, Q]) Submit(ctx context.Context, token string, state *ListState[L], op Operation, form url.Values) (Toast, *Drawer) {
	ctx, span := util.StartSpan(ctx, "Screen."+r.Name+".Submit")
	defer span.End()

	var toast Toast
	switch op.Mode {
	case ModeCreate:
		toast = r.create(ctx, token, state, form)
	case ModeEdit:
		toast = r.edit(ctx, token, state, op.ID, form)
	case ModeDelete:
		toast = r.remove(ctx, token, state, op.ID)
	default:
		return Toast{Kind: ToastError, Message: "Unknown operation"}, nil
	}

	r.logger().Debug("Submit finished",
		zap.String("mode", string(op.Mode)),
		zap.String("id", op.ID),
		zap.String("toast", toast.Kind),
		zap.String("message", toast.Message),
	)
	if toast.OK() {
		return toast, nil
	}

	drawer, ok := r.Drawer(op, state)
	if !ok {
		return toast, nil
	}
	if op.Mode != ModeDelete {
		drawer.Fields = WithValues(drawer.Fields, FormValues(form), ErrorMap(toast.Errors))
	}
	return toast, drawer
}

func (r *Resource[C, U, D, L, Q]) create(ctx context.Context, token string, state *ListState[L], form url.Values) Toast {
	req, errs := Bind[C](form)
	if errs != nil {
		return validationToast(r.Name, errs)
	}
	resp := r.Backend.Create(ctx, token, req)
	if !resp.OK() {
		return errorToast(resp.Message, resp.Payload.Errors)
	}
	row := r.FromDetail(resp.Payload.Data)
	if row.GetID() == "" {
		return errorToast(resp.Message, nil)
	}
	state.Append(row)
	return successToast(resp.Message, r.Singular+" created")
}

func (r *Resource[C, U, D, L, Q]) edit(ctx context.Context, token string, state *ListState[L], id string, form url.Values) Toast {
	if _, ok := state.Find(id); !ok {
		return notFoundToast(r.Singular)
	}
	req, errs := Bind[U](form)
	if errs != nil {
		return validationToast(r.Name, errs)
	}
	resp := r.Backend.Update(ctx, token, id, req)
	if !resp.OK() {
		return errorToast(resp.Message, resp.Payload.Errors)
	}
	detail := resp.Payload.Data
	state.Update(id, func(row L) L { return r.Merge(row, detail) })
	return successToast(resp.Message, r.Singular+" updated")
}

func (r *Resource[C, U, D, L, Q]) remove(ctx context.Context, token string, state *ListState[L], id string) Toast {
	if _, ok := state.Find(id); !ok {
		return notFoundToast(r.Singular)
	}
	resp := r.Backend.Delete(ctx, token, id)
	if !resp.OK() {
		return errorToast(resp.Message, resp.Payload.Errors)
	}
	state.Remove(id)
	return successToast(resp.Message, r.Singular+" deleted")
}

func (r *Resource[C, U, D, L, Q]) logger() *zap.Logger {
	if r.Logger == nil {
		return util.Component("screen." + r.Name)
	}
	return r.Logger
}

func successToast(message, fallback string) Toast {
	return Toast{Kind: ToastSuccess, Message: Fallback(message, fallback)}
}

func errorToast(message string, errs []models.ErrorDetail) Toast {
	return Toast{Kind: ToastError, Message: Fallback(message, models.MessageUnexpected), Errors: errs}
}

func validationToast(resource string, errs []models.ErrorDetail) Toast {
	util.ValidationFailuresTotal.WithLabelValues(resource).Inc()
	return errorToast(models.MessageValidationFailed, errs)
}

func notFoundToast(singular string) Toast {
	return Toast{Kind: ToastError, Message: fmt.Sprintf("%s not found on this page", singular)}
}

// StatusFor maps a toast to the HTTP status of the submit response.
func StatusFor(t Toast) int {
	if t.OK() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}
