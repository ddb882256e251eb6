package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a settlement against an order. Key is the issued
// business key ("PID00000001"). Amount never exceeds the referenced
// order's outstanding total; the use case enforces this inside the
// recording transaction.
type Payment struct {
	ID        uuid.UUID
	Key       string
	OrderID   uuid.UUID
	OrderKey  string // Denormalized order business key for receipts and lookups.
	Amount    float64
	Method    string
	Remark    string
	CreatedAt time.Time
}
