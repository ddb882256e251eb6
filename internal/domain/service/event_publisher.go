package service

import (
	"context"
)

// Activity kinds carried by OrderActivityEvent.
const (
	ActivityOrderPlaced     = "order_placed"
	ActivityReturnRequested = "return_requested"
	ActivityPaymentRecorded = "payment_recorded"
)

// OrderActivityEvent represents an order, return or payment activity to be
// processed asynchronously by the notifier worker.
type OrderActivityEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Activity  string  `json:"activity"`             // One of the Activity* constants
	RecordKey string  `json:"record_key"`           // Business key of the record ("OD001", "RID000042", ...)
	OrderKey  string  `json:"order_key,omitempty"`  // Related order key for payments
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderActivity publishes an order activity event for async processing
	PublishOrderActivity(ctx context.Context, event *OrderActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
