package repository

import (
	"context"
	"errors"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are addressed externally by their business key ("OD001"), never
// by the internal UUID.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByKey retrieves a single order, with items, by its business key.
	FindByKey(ctx context.Context, key string) (*entity.Order, error)

	// List retrieves all orders, most recent first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByUserID retrieves a user's orders, most recent first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// LastKey returns the highest issued order business key, or the empty
	// string when no order exists yet.
	LastKey(ctx context.Context) (string, error)

	// UpdateStatus sets the fulfilment status of an order.
	UpdateStatus(ctx context.Context, key string, status entity.OrderStatus) error

	// UpdatePaymentStatus sets the settlement status of an order.
	UpdatePaymentStatus(ctx context.Context, key string, status entity.PaymentStatus) error
}
