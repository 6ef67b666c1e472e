package models

import "time"

type StockAlert struct {
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	WarehouseID    string    `json:"warehouse_id"`
	WarehouseName  string    `json:"warehouse_name"`
	Quantity       int       `json:"quantity"`
	Status         string    `json:"status"`
	UpdatedByEmail string    `json:"updated_by_email"`
	UpdatedByName  string    `json:"updated_by_name"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RecentAddition struct {
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	CreatedByEmail string    `json:"created_by_email"`
	CreatedByName  string    `json:"created_by_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// DashboardSummary is recomputed by the backend on every fetch.
type DashboardSummary struct {
	TotalStock       int              `json:"total_stock"`
	NumberOfProducts int              `json:"number_of_products"`
	LowStockItems    []StockAlert     `json:"low_stock_items"`
	OutOfStockItems  []StockAlert     `json:"out_of_stock_items"`
	RecentAdditions  []RecentAddition `json:"recent_additions"`
}
