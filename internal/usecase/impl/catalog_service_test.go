package impl

import (
	"context"
	"testing"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	mockRepo "bizops/internal/mocks/repository"
	"bizops/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := usecase.CreateProductInput{
		ManufacturingID: "MFG-001",
		Name:            "Steel Bracket",
		UnitPrice:       12.5,
		StockOnHand:     100,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "MFG-001", product.ManufacturingID)
	assert.Equal(t, 100, product.StockOnHand)
}

func TestCatalogService_CreateProduct_DuplicateManufacturingID(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := usecase.CreateProductInput{
		ManufacturingID: "MFG-001",
		Name:            "Steel Bracket",
		UnitPrice:       12.5,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductAlreadyExists)

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	input := usecase.CreateProductInput{
		ManufacturingID: "MFG-001",
		Name:            "Steel Bracket",
		UnitPrice:       -1,
	}

	product, err := fx.service.CreateProduct(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByManufacturingID(ctx, "MFG-404").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, "MFG-404")

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_UpdateProduct_PartialUpdate(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	newPrice := 15.0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindByManufacturingID(ctx, "MFG-001").
				Return(&entity.Product{
					ManufacturingID: "MFG-001",
					Name:            "Steel Bracket",
					UnitPrice:       12.5,
					StockOnHand:     100,
				}, nil)

			mockProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					// Only the price changes; the rest stays untouched.
					assert.Equal(t, 15.0, product.UnitPrice)
					assert.Equal(t, "Steel Bracket", product.Name)
					assert.Equal(t, 100, product.StockOnHand)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, "MFG-001", usecase.UpdateProductInput{UnitPrice: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, 15.0, product.UnitPrice)
}
