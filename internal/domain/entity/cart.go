package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the transient shopping cart of a user. One cart per user;
// placing an order consumes and clears it.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	UpdatedAt time.Time
}

// CartItem is a single product selection inside a cart.
type CartItem struct {
	ID              uuid.UUID
	CartID          uuid.UUID
	ManufacturingID string
	Quantity        int
}
