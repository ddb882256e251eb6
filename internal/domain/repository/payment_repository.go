package repository

import (
	"context"
	"errors"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment record is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByKey retrieves a single payment by its business key.
	FindByKey(ctx context.Context, key string) (*entity.Payment, error)

	// List retrieves all payments, most recent first.
	List(ctx context.Context) ([]*entity.Payment, error)

	// ListByOrderID retrieves the payments recorded against an order,
	// oldest first.
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// TotalPaidForOrder sums the amounts of all payments against an order.
	TotalPaidForOrder(ctx context.Context, orderID uuid.UUID) (float64, error)

	// LastKey returns the highest issued payment business key, or the empty
	// string when no payment exists yet.
	LastKey(ctx context.Context) (string, error)
}
