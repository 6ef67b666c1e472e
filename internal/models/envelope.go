package models

import "net/http"

// Status is the outcome reported by every envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusFail    Status = "fail"
)

// Messages shared by locally built envelopes.
const (
	MessageValidationFailed = "Validation failed"
	MessageUnauthorized     = "Unauthorized"
	MessageUnexpected       = "Unexpected server error"
)

// ErrorDetail is a single field-level error.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination carries either the page style block (current_page, total_pages...)
// or the cursor style block (has_next, next_id, limit) the backend may return.
type Pagination struct {
	HasNextPage bool `json:"has_next_page"`
	NextPage    *int `json:"next_page,omitempty"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`

	HasNext bool `json:"has_next,omitempty"`
	NextID  *int `json:"next_id,omitempty"`
	Limit   int  `json:"limit,omitempty"`
}

// IsCursor reports whether the backend answered with cursor pagination.
func (p *Pagination) IsCursor() bool {
	return p != nil && p.TotalPages == 0 && p.CurrentPage == 0 && (p.HasNext || p.Limit > 0)
}

// Payload wraps the data of an envelope.
type Payload[T any] struct {
	Data       T             `json:"data"`
	Pagination *Pagination   `json:"pagination,omitempty"`
	Errors     []ErrorDetail `json:"errors"`
}

// APIResponse is the uniform envelope every backend call is normalized into.
type APIResponse[T any] struct {
	Status     Status     `json:"status"`
	StatusCode int        `json:"status_code"`
	Message    string     `json:"message"`
	Payload    Payload[T] `json:"payload"`
}

// OK reports whether the envelope carries a success status.
func (r *APIResponse[T]) OK() bool {
	return r != nil && r.Status == StatusSuccess
}

// Normalize fills the defaults a partially decoded envelope may lack.
func (r *APIResponse[T]) Normalize() *APIResponse[T] {
	if r.Payload.Errors == nil {
		r.Payload.Errors = []ErrorDetail{}
	}
	if r.Status == "" {
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			r.Status = StatusSuccess
		} else {
			r.Status = StatusError
		}
	}
	return r
}

// Fail builds an error envelope without data.
func Fail[T any](statusCode int, message string, errs ...ErrorDetail) *APIResponse[T] {
	if errs == nil {
		errs = []ErrorDetail{}
	}
	return &APIResponse[T]{
		Status:     StatusError,
		StatusCode: statusCode,
		Message:    message,
		Payload:    Payload[T]{Errors: errs},
	}
}

// ValidationFailed is returned when a payload is rejected before any network call.
func ValidationFailed[T any](errs []ErrorDetail) *APIResponse[T] {
	return Fail[T](http.StatusBadRequest, MessageValidationFailed, errs...)
}

// Unauthorized is returned by the action layer when no token is present.
func Unauthorized[T any]() *APIResponse[T] {
	return Fail[T](http.StatusUnauthorized, MessageUnauthorized)
}

// Unexpected maps transport failures and undecodable responses.
func Unexpected[T any]() *APIResponse[T] {
	return Fail[T](http.StatusInternalServerError, MessageUnexpected)
}

// Success builds a success envelope, mostly useful in tests and fakes.
func Success[T any](statusCode int, message string, data T) *APIResponse[T] {
	return &APIResponse[T]{
		Status:     StatusSuccess,
		StatusCode: statusCode,
		Message:    message,
		Payload:    Payload[T]{Data: data, Errors: []ErrorDetail{}},
	}
}
