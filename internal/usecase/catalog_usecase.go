package usecase

import (
	"context"

	"bizops/internal/domain/entity"
)

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	ManufacturingID string
	Name            string
	Description     string
	UnitPrice       float64
	StockOnHand     int
}

// UpdateProductInput defines the mutable product fields. Nil pointers leave
// the stored value untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	UnitPrice   *float64
	StockOnHand *int
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, manufacturingID string) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, manufacturingID string, input UpdateProductInput) (*entity.Product, error)
}
