package entity

import (
	"time"

	"github.com/google/uuid"
)

// Return is a reversal of an order. Key is the issued business key
// ("RID000001"); PaymentStatus defaults to Return.
type Return struct {
	ID            uuid.UUID
	Key           string
	UserID        uuid.UUID
	ReturnDate    time.Time
	PaymentStatus PaymentStatus
	Items         []*ReturnItem
	CreatedAt     time.Time
}

// ReturnItem is one returned line: a product reference and a quantity.
type ReturnItem struct {
	ID              uuid.UUID
	ReturnID        uuid.UUID
	ManufacturingID string
	Quantity        int
}
