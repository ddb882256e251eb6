package repository

import (
	"context"
	"errors"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the operations for the per-user shopping cart.
// Each user owns at most one cart; items are keyed by manufacturing ID.
type CartRepository interface {
	// FindByUserID retrieves the user's cart with its items.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// GetOrCreate retrieves the user's cart, creating an empty one if none exists.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// UpsertItem sets the quantity for a product in the cart, inserting the
	// line when it is new and replacing the quantity when it already exists.
	UpsertItem(ctx context.Context, cartID uuid.UUID, manufacturingID string, quantity int) error

	// RemoveItem deletes a single product line from the cart.
	RemoveItem(ctx context.Context, cartID uuid.UUID, manufacturingID string) error

	// Clear removes every item from the cart.
	Clear(ctx context.Context, cartID uuid.UUID) error
}
