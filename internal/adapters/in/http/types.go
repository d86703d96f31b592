package http

import "time"

// Error is the uniform error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a newly
// created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// NewOrderRequest is the body of POST /api/v1/orders. TotalPriceCents is
// the client's figure and is stored as given, not re-derived from the lines.
type NewOrderRequest struct {
	TableNumber     string                `json:"table_number"`
	GuestID         string                `json:"guest_id"`
	TotalPriceCents int64                 `json:"total_price_cents"`
	LineItems       []NewOrderLineRequest `json:"line_items"`
	Remarks         string                `json:"remarks"`
}

// NewOrderLineRequest is one requested line of a new order.
type NewOrderLineRequest struct {
	MenuItemID     string `json:"menu_item_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Notes          string `json:"notes"`
}

// NewCustomItemRequest is the body of POST /api/v1/custom-items.
// GuestID is optional; custom items may be entered by staff without an
// identified guest.
type NewCustomItemRequest struct {
	StallID    string `json:"stall_id"`
	TableID    string `json:"table_id"`
	GuestID    string `json:"guest_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
	Remarks    string `json:"remarks"`
}

// ActiveOrder is one row of GET /api/v1/orders/active.
type ActiveOrder struct {
	ID              string    `json:"id"`
	TableNumber     string    `json:"table_number"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	ItemCount       int       `json:"item_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// KitchenQueueEntry is one row of GET /api/v1/kitchen/queue. OrderID is
// empty for custom items, which have no parent order.
type KitchenQueueEntry struct {
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	OrderID  string `json:"order_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
}
