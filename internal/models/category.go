package models

import "time"

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse is the detail projection. The backend does not return
// updated_at on it.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryListItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c CategoryListItem) GetID() string { return c.ID }

func CategoryListItemFromDetail(d CategoryResponse) CategoryListItem {
	return CategoryListItem{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
}

func MergeCategory(row CategoryListItem, d CategoryResponse) CategoryListItem {
	row.Name = d.Name
	row.Description = d.Description
	row.UpdatedAt = time.Now().UTC()
	return row
}
