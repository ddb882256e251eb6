package impl

import (
	"context"
	"testing"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	mockRepo "bizops/internal/mocks/repository"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_EmptyWhenMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}

func TestCartService_GetCart_TotalsLines(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ManufacturingID: "MFG-001", Quantity: 2},
			{ManufacturingID: "MFG-002", Quantity: 1},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByManufacturingIDs(ctx, []string{"MFG-001", "MFG-002"}).
		Return([]*entity.Product{
			{ManufacturingID: "MFG-001", UnitPrice: 10},
			{ManufacturingID: "MFG-002", UnitPrice: 5.5},
		}, nil)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 25.5, view.Total)
}

func TestCartService_SetItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindByManufacturingID(ctx, "MFG-001").
				Return(&entity.Product{ManufacturingID: "MFG-001", StockOnHand: 3}, nil)

			mockCartRepo.EXPECT().
				GetOrCreate(ctx, userID).
				Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInsufficientStock, "requested quantity exceeds stock"))

	view, err := fx.service.SetItem(ctx, userID, usecase.CartItemInput{ManufacturingID: "MFG-001", Quantity: 5})

	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestCartService_SetItem_ZeroQuantityRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindByManufacturingID(ctx, "MFG-001").
				Return(&entity.Product{ManufacturingID: "MFG-001", StockOnHand: 3}, nil)

			mockCartRepo.EXPECT().
				GetOrCreate(ctx, userID).
				Return(&entity.Cart{ID: cartID, UserID: userID}, nil)

			mockCartRepo.EXPECT().RemoveItem(ctx, cartID, "MFG-001").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The cart is re-read after the transaction commits.
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)

	view, err := fx.service.SetItem(ctx, userID, usecase.CartItemInput{ManufacturingID: "MFG-001", Quantity: 0})

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_ClearCart_NoopWhenMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	err := fx.service.ClearCart(ctx, userID)

	assert.NoError(t, err)
}
