package models

import "time"

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	SKU         string `json:"sku" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest only sends the fields that are set. Present strings
// must not be empty.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1"`
	SKU         *string `json:"sku,omitempty" validate:"omitnil,min=1"`
	CategoryID  *string `json:"category_id,omitempty" validate:"omitnil,uuid"`
	Description *string `json:"description,omitempty"`
}

// ProductListRequest extends the shared list query with the product filters.
type ProductListRequest struct {
	Page       int    `json:"page" validate:"gte=1"`
	Limit      int    `json:"limit" validate:"gte=1,lte=100"`
	Search     string `json:"search,omitempty"`
	SortBy     string `json:"sort_by,omitempty" validate:"omitempty,oneof=name sku created_at"`
	Order      string `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	CategoryID string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=available low-stock out-of-stock"`
}

func (p ProductListRequest) WithDefaults() ProductListRequest {
	base := PaginationRequest{Page: p.Page, Limit: p.Limit}.WithDefaults()
	p.Page, p.Limit = base.Page, base.Limit
	return p
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	CategoryID  string    `json:"category_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductListItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p ProductListItem) GetID() string { return p.ID }

// ProductListItemFromDetail projects a detail response onto a table row.
func ProductListItemFromDetail(d ProductResponse) ProductListItem {
	return ProductListItem{
		ID:          d.ID,
		Name:        d.Name,
		SKU:         d.SKU,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MergeProduct overlays an updated detail on an existing row, keeping the
// joined category name unless the category changed.
func MergeProduct(row ProductListItem, d ProductResponse) ProductListItem {
	merged := ProductListItemFromDetail(d)
	if d.CategoryID == row.CategoryID {
		merged.CategoryName = row.CategoryName
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = row.CreatedAt
	}
	return merged
}
