package models

import "time"

// CheckoutRequest is what the client submits to place an order.
type CheckoutRequest struct {
	AddressID string `json:"address_id"`
	Notes     string `json:"notes"`
}

// OrderItem is a cart line reduced to what the order service needs.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the payload sent to the external order service.
type OrderRequest struct {
	Items     []OrderItem `json:"items"`
	AddressID string      `json:"address_id"`
	Notes     string      `json:"notes,omitempty"`
}

// OrderResponse is the order service's reply on success.
type OrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// CheckoutEvent is published to Kafka once the order service has
// accepted the order.
type CheckoutEvent struct {
	Event     string      `json:"event"` // "checkout.completed"
	UserID    string      `json:"user_id"`
	OrderID   string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
	Timestamp time.Time   `json:"timestamp"`
}
