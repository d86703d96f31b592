package commands

// Notification topics published after a committed state change.
// Delivery is best-effort; consumers must tolerate missing events.
const (
	TopicOrderCreated      = "order.created"
	TopicOrderRemoved      = "order.removed"
	TopicItemStatusChanged = "order.item_status_changed"
	TopicCustomItemCreated = "stall.custom_item_created"
	TopicCustomItemRemoved = "stall.custom_item_removed"
)

// OrderCreatedEvent is the payload published on TopicOrderCreated.
type OrderCreatedEvent struct {
	OrderID     string `json:"order_id"`
	TableNumber string `json:"table_number"`
	ItemCount   int    `json:"item_count"`
	TotalPrice  string `json:"total_price"`
}

// OrderRemovedEvent is the payload published on TopicOrderRemoved.
type OrderRemovedEvent struct {
	OrderID string `json:"order_id"`
}

// ItemStatusChangedEvent is the payload published on TopicItemStatusChanged.
type ItemStatusChangedEvent struct {
	ItemID    string `json:"item_id"`
	ItemKind  string `json:"item_kind"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	OrderID   string `json:"order_id,omitempty"`
}

// CustomItemCreatedEvent is the payload published on TopicCustomItemCreated.
type CustomItemCreatedEvent struct {
	CustomItemID string `json:"custom_item_id"`
	StallID      string `json:"stall_id"`
	TableID      string `json:"table_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
}

// CustomItemRemovedEvent is the payload published on TopicCustomItemRemoved.
type CustomItemRemovedEvent struct {
	CustomItemID string `json:"custom_item_id"`
}
