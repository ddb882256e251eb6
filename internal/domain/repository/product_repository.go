package repository

import (
	"context"
	"errors"

	"bizops/internal/domain/entity"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductAlreadyExists is returned when a manufacturing ID is already taken.
	ErrProductAlreadyExists = errors.New("product already exists")
)

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByManufacturingID retrieves a single product by its manufacturing ID.
	FindByManufacturingID(ctx context.Context, manufacturingID string) (*entity.Product, error)

	// FindByManufacturingIDs retrieves the products for a set of manufacturing IDs.
	// Missing IDs are simply absent from the result; the caller decides whether
	// that is an error.
	FindByManufacturingIDs(ctx context.Context, manufacturingIDs []string) ([]*entity.Product, error)

	// List retrieves all products ordered by name.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// AdjustStock atomically adds delta (which may be negative) to the
	// product's stock on hand. Implementations must reject adjustments that
	// would drive the stock below zero.
	AdjustStock(ctx context.Context, manufacturingID string, delta int) error
}
