package models

// Empty is the data of envelopes whose backend payload is an empty object
// (delete, sign-out, change password).
type Empty struct{}

// Identifiable is implemented by every list projection shown in a resource table.
type Identifiable interface {
	GetID() string
}

// Default list query values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationRequest is the list query shared by every resource.
type PaginationRequest struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1"`
}

// WithDefaults fills zero values with the default page and limit.
func (p PaginationRequest) WithDefaults() PaginationRequest {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p
}
