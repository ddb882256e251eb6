package impl

import (
	"context"
	"testing"

	"bizops/internal/domain/bizkey"
	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/domain/service"
	mockRepo "bizops/internal/mocks/repository"
	mockSvc "bizops/internal/mocks/service"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.PlaceOrderInput{
		UserID: userID,
		Lines: []usecase.OrderLineInput{
			{ManufacturingID: "MFG-001", Quantity: 2},
			{ManufacturingID: "MFG-002", Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSequenceRepo := mockRepo.NewMockSequenceRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewSequenceRepository().Return(mockSequenceRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{
					ID:             userID,
					Status:         entity.UserStatusActive,
					CompanyProfile: &entity.CompanyProfile{CompanyName: "Acme Trading Co."},
				}, nil)

			mockProductRepo.EXPECT().
				FindByManufacturingIDs(ctx, []string{"MFG-001", "MFG-002"}).
				Return([]*entity.Product{
					{ManufacturingID: "MFG-001", UnitPrice: 10},
					{ManufacturingID: "MFG-002", UnitPrice: 4},
				}, nil)

			mockProductRepo.EXPECT().AdjustStock(ctx, "MFG-001", -2).Return(nil)
			mockProductRepo.EXPECT().AdjustStock(ctx, "MFG-002", -1).Return(nil)

			mockSequenceRepo.EXPECT().Issue(ctx, bizkey.Order).Return("OD001", nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, "OD001", order.Key)
					assert.Equal(t, "Acme Trading Co.", order.CompanyName)
					assert.Equal(t, entity.OrderStatusProcessing, order.Status)
					assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
					assert.Equal(t, 24.0, order.TotalAmount)
					require.Len(t, order.Items, 2)
					assert.Equal(t, 10.0, order.Items[0].UnitPrice)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderActivity(ctx, mock.AnythingOfType("*service.OrderActivityEvent")).
		Run(func(ctx context.Context, event *service.OrderActivityEvent) {
			assert.Equal(t, service.ActivityOrderPlaced, event.Activity)
			assert.Equal(t, "OD001", event.RecordKey)
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "OD001", order.Key)
	assert.Equal(t, 24.0, order.TotalAmount)
}

func TestOrderService_PlaceOrder_EmptyLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
			mockFactory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))
			mockFactory.EXPECT().NewCartRepository().Return(mockRepo.NewMockCartRepository(t))
			mockFactory.EXPECT().NewSequenceRepository().Return(mockRepo.NewMockSequenceRepository(t))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrEmptyLineItems, "order has no line items"))

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{UserID: userID})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyLineItems))
}

func TestOrderService_PlaceOrder_FromCartClearsCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockSequenceRepo := mockRepo.NewMockSequenceRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewSequenceRepository().Return(mockSequenceRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)

			mockCartRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.Cart{
					ID:     cartID,
					UserID: userID,
					Items:  []*entity.CartItem{{ManufacturingID: "MFG-001", Quantity: 3}},
				}, nil)

			mockProductRepo.EXPECT().
				FindByManufacturingIDs(ctx, []string{"MFG-001"}).
				Return([]*entity.Product{{ManufacturingID: "MFG-001", UnitPrice: 7}}, nil)

			mockProductRepo.EXPECT().AdjustStock(ctx, "MFG-001", -3).Return(nil)

			mockSequenceRepo.EXPECT().Issue(ctx, bizkey.Order).Return("OD002", nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)

			mockCartRepo.EXPECT().Clear(ctx, cartID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderActivity(ctx, mock.AnythingOfType("*service.OrderActivityEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{UserID: userID, FromCart: true})

	require.NoError(t, err)
	assert.Equal(t, "OD002", order.Key)
	assert.Equal(t, 21.0, order.TotalAmount)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockSequenceRepo := mockRepo.NewMockSequenceRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewCartRepository().Return(mockRepo.NewMockCartRepository(t))
			mockFactory.EXPECT().NewSequenceRepository().Return(mockSequenceRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)

			mockProductRepo.EXPECT().
				FindByManufacturingIDs(ctx, []string{"MFG-001"}).
				Return([]*entity.Product{{ManufacturingID: "MFG-001", UnitPrice: 7}}, nil)

			mockProductRepo.EXPECT().AdjustStock(ctx, "MFG-001", -1).Return(nil)
			mockSequenceRepo.EXPECT().Issue(ctx, bizkey.Order).Return("OD003", nil)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderActivity(ctx, mock.AnythingOfType("*service.OrderActivityEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: userID,
		Lines:  []usecase.OrderLineInput{{ManufacturingID: "MFG-001", Quantity: 1}},
	})

	// The order is committed; publishing is best-effort.
	require.NoError(t, err)
	assert.Equal(t, "OD003", order.Key)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateOrderStatus(context.Background(), "OD001", entity.OrderStatus("Shipped"))

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByKey(ctx, "OD999").Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, "OD999")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
