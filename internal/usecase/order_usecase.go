package usecase

import (
	"context"
	"time"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ManufacturingID string
	Quantity        int
}

// PlaceOrderInput defines the data required to place an order. When
// FromCart is true the line items are read from the user's cart instead of
// Lines, and the cart is emptied once the order is committed.
type PlaceOrderInput struct {
	UserID      uuid.UUID
	Lines       []OrderLineInput
	FromCart    bool
	OverdueDate *time.Time
}

// OrderUsecase defines the interface for order operations. Orders are
// looked up by their business key ("OD001").
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, key string) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, key string, status entity.OrderStatus) (*entity.Order, error)
}
