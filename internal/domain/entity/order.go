package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// PaymentStatus tracks how much of a record's amount has been settled.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
	// PaymentStatusReturn marks return records, which carry no balance.
	PaymentStatusReturn PaymentStatus = "Return"
)

// Order is a purchase record. Key is the human-readable business key
// ("OD001") used in all external-facing lookups.
type Order struct {
	ID            uuid.UUID
	Key           string
	UserID        uuid.UUID // Owning account.
	CompanyName   string    // Denormalized from the owner's company profile at placement.
	Status        OrderStatus
	PaymentStatus PaymentStatus
	OrderDate     time.Time
	OverdueDate   *time.Time
	TotalAmount   float64 // Priced from the catalog when the order is placed.
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is one line of an order: a product reference and a quantity,
// with the unit price captured at placement time.
type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ManufacturingID string
	Quantity        int
	UnitPrice       float64
}
