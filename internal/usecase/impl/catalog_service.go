package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizops/internal/delivery/context"
	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to the catalog. The manufacturing ID must be
// unused; stock and price must be non-negative.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("manufacturingID", input.ManufacturingID))

	switch {
	case input.ManufacturingID == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("manufacturing ID is required")
	case input.Name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	case input.UnitPrice < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unit price must not be negative")
	case input.StockOnHand < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock on hand must not be negative")
	}

	product := &entity.Product{
		ManufacturingID: input.ManufacturingID,
		Name:            input.Name,
		Description:     input.Description,
		UnitPrice:       input.UnitPrice,
		StockOnHand:     input.StockOnHand,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "manufacturing ID already in use")
		}
		srv.log(ctx).Error("Failed to create product", slog.String("manufacturingID", input.ManufacturingID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves one catalog entry by its manufacturing ID.
func (srv *catalogService) GetProduct(ctx context.Context, manufacturingID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByManufacturingID(ctx, manufacturingID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies the non-nil fields of input to the stored product.
// The read and write run in one transaction so concurrent updates cannot
// interleave.
func (srv *catalogService) UpdateProduct(ctx context.Context, manufacturingID string, input usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.String("manufacturingID", manufacturingID))

	if input.UnitPrice != nil && *input.UnitPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unit price must not be negative")
	}
	if input.StockOnHand != nil && *input.StockOnHand < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock on hand must not be negative")
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByManufacturingID(ctx, manufacturingID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
			}

			return errors.Wrap(err, "failed to find product for update")
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.UnitPrice != nil {
			product.UnitPrice = *input.UnitPrice
		}
		if input.StockOnHand != nil {
			product.StockOnHand = *input.StockOnHand
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute product update transaction", slog.String("manufacturingID", manufacturingID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}
