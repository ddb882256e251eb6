package usecase

import (
	"context"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemInput sets the quantity of one product line in the cart.
type CartItemInput struct {
	ManufacturingID string
	Quantity        int
}

// CartLine is a cart item joined with its catalog data for display.
type CartLine struct {
	Product  *entity.Product
	Quantity int
}

// CartView is the cart rendered for the client: priced lines plus the
// running total.
type CartView struct {
	UserID uuid.UUID
	Lines  []*CartLine
	Total  float64
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	// GetCart returns the user's cart with catalog data joined in.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// SetItem sets the quantity for a product, validating it against the
	// catalog and available stock. Quantity zero removes the line.
	SetItem(ctx context.Context, userID uuid.UUID, input CartItemInput) (*CartView, error)

	// RemoveItem removes a product line from the cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, manufacturingID string) (*CartView, error)

	// ClearCart removes every line from the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
