package postgres

import (
	"context"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByManufacturingID retrieves a product by its manufacturing ID.
func (repo *productRepository) FindByManufacturingID(ctx context.Context, manufacturingID string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("manufacturing_id = ?", manufacturingID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by manufacturing ID")
	}

	return toProductDomain(&productM), nil
}

// FindByManufacturingIDs retrieves the products for a set of manufacturing IDs.
func (repo *productRepository) FindByManufacturingIDs(ctx context.Context, manufacturingIDs []string) ([]*entity.Product, error) {
	if len(manufacturingIDs) == 0 {
		return nil, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("manufacturing_id IN ?", manufacturingIDs).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by manufacturing IDs")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// List retrieves all products ordered by name.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProductAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("manufacturing_id = ?", product.ManufacturingID).
		Updates(map[string]any{
			"name":          product.Name,
			"description":   product.Description,
			"unit_price":    product.UnitPrice,
			"stock_on_hand": product.StockOnHand,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock atomically applies a stock delta. The WHERE clause guards
// against driving the stock below zero under concurrent orders.
func (repo *productRepository) AdjustStock(ctx context.Context, manufacturingID string, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("manufacturing_id = ? AND stock_on_hand + ? >= 0", manufacturingID, delta).
		Update("stock_on_hand", gorm.Expr("stock_on_hand + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust stock")
	}
	if result.RowsAffected == 0 {
		// Either the product is missing or the stock would go negative.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("manufacturing_id = ?", manufacturingID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to verify product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return domainerrors.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:              data.ID,
		ManufacturingID: data.ManufacturingID,
		Name:            data.Name,
		Description:     data.Description,
		UnitPrice:       data.UnitPrice,
		StockOnHand:     data.StockOnHand,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              data.ID,
		ManufacturingID: data.ManufacturingID,
		Name:            data.Name,
		Description:     data.Description,
		UnitPrice:       data.UnitPrice,
		StockOnHand:     data.StockOnHand,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
