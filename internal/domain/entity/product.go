package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Line items on orders and returns reference
// products by ManufacturingID, not by the internal primary key.
type Product struct {
	ID              uuid.UUID
	ManufacturingID string // External product identifier, globally unique.
	Name            string
	Description     string
	UnitPrice       float64
	StockOnHand     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
