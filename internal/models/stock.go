package models

import "time"

// Stock status values, derived by the backend from the quantity.
const (
	StockAvailable  = "available"
	StockLow        = "low-stock"
	StockOutOfStock = "out-of-stock"
)

type CreateStockRequest struct {
	ProductID           string `json:"product_id" validate:"required,uuid"`
	WarehouseLocationID string `json:"warehouse_location_id" validate:"required,uuid"`
	Quantity            *int   `json:"quantity" validate:"required,min=0"`
}

type UpdateStockRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

type StockResponse struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"product_id"`
	WarehouseLocationID string    `json:"warehouse_location_id"`
	Quantity            int       `json:"quantity"`
	Status              string    `json:"status"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type StockListItem struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"product_id"`
	ProductName         string    `json:"product_name"`
	WarehouseLocationID string    `json:"warehouse_location_id"`
	WarehouseName       string    `json:"warehouse_name"`
	Quantity            int       `json:"quantity"`
	Status              string    `json:"status"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (s StockListItem) GetID() string { return s.ID }

func StockListItemFromDetail(d StockResponse) StockListItem {
	return StockListItem{
		ID:                  d.ID,
		ProductID:           d.ProductID,
		WarehouseLocationID: d.WarehouseLocationID,
		Quantity:            d.Quantity,
		Status:              d.Status,
		UpdatedAt:           d.UpdatedAt,
	}
}

// MergeStock keeps the joined product and warehouse names of the row.
func MergeStock(row StockListItem, d StockResponse) StockListItem {
	row.Quantity = d.Quantity
	row.Status = d.Status
	row.UpdatedAt = d.UpdatedAt
	return row
}

// IntPtr is a small helper for optional quantities.
func IntPtr(v int) *int { return &v }
