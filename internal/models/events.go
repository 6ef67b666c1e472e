package models

import "time"

// Event types
const (
	EventTypeResourceMutated = "resource.mutated"
)

// Resource names used in events, metrics and screen keys.
const (
	ResourceProducts   = "products"
	ResourceCategories = "categories"
	ResourceLocations  = "locations"
	ResourceStocks     = "stocks"
	ResourceAuth       = "auth"
	ResourceDashboard  = "dashboard"
)

// Mutation kinds.
const (
	MutationCreate = "create"
	MutationUpdate = "update"
	MutationDelete = "delete"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ResourceMutatedEvent published after the backend accepted a create, update or delete
type ResourceMutatedEvent struct {
	BaseEvent
	Resource   string `json:"resource"`
	Mutation   string `json:"mutation"`
	ResourceID string `json:"resource_id"`
	Actor      string `json:"actor"`
	Summary    string `json:"summary"`
	StatusCode int    `json:"status_code"`
}
