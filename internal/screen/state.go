package screen

import "warehouse-dashboard/internal/models"

// Mode is the kind of operation the drawer is open for.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

// ParseMode maps a query value onto a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeCreate, ModeEdit, ModeDelete:
		return Mode(s), true
	}
	return "", false
}

// Operation is the current drawer selection. ID is empty in create mode.
type Operation struct {
	Mode Mode   `json:"mode"`
	ID   string `json:"id,omitempty"`
}

// ListState is the per-session copy of one page of a resource list. It is
// seeded from the list call and then patched by id after each mutation.
type ListState[T models.Identifiable] struct {
	Items      []T                `json:"items"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// NewListState seeds state from a list envelope.
func NewListState[T models.Identifiable](resp *models.APIResponse[[]T], page, limit int) *ListState[T] {
	items := resp.Payload.Data
	if items == nil {
		items = []T{}
	}
	state := &ListState[T]{
		Items: items,
		Page:  page,
		Limit: limit,
	}
	if p := resp.Payload.Pagination; p != nil {
		copied := *p
		state.Pagination = &copied
	}
	return state
}

// Find returns the row with id.
func (s *ListState[T]) Find(id string) (T, bool) {
	for _, item := range s.Items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds exactly one row.
func (s *ListState[T]) Append(item T) {
	s.Items = append(s.Items, item)
	s.recount(1)
}

// Update replaces the first row with id by fn(row). Returns false when no row matched.
func (s *ListState[T]) Update(id string, fn func(T) T) bool {
	for i, item := range s.Items {
		if item.GetID() == id {
			s.Items[i] = fn(item)
			return true
		}
	}
	return false
}

// Remove drops exactly one row with id. Returns false when no row matched.
func (s *ListState[T]) Remove(id string) bool {
	for i, item := range s.Items {
		if item.GetID() == id {
			s.Items = append(s.Items[:i:i], s.Items[i+1:]...)
			s.recount(-1)
			return true
		}
	}
	return false
}

// recount moves the page totals by delta rows. Cursor pagination carries no
// totals.
func (s *ListState[T]) recount(delta int) {
	p := s.Pagination
	if p == nil || p.IsCursor() {
		return
	}
	limit := s.Limit
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	p.TotalItems = max(p.TotalItems+delta, 0)
	p.TotalPages = (p.TotalItems + limit - 1) / limit
}
