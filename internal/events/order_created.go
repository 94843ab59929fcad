package events

import "time"

// OrderCreated is published on the order.created queue after a checkout
// commits. Consumers must treat it as informational; the order is already
// durable when this event exists.
type OrderCreated struct {
	EventType   string             `json:"eventType"`
	OrderID     int                `json:"orderId"`
	UserID      int                `json:"userId"`
	TotalAmount string             `json:"totalAmount"`
	Items       []OrderCreatedItem `json:"items"`
	Timestamp   time.Time          `json:"timestamp"`
}

type OrderCreatedItem struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}
