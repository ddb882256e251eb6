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

type returnServiceFixtures struct {
	service    usecase.ReturnUsecase
	txManager  *mockRepo.MockTransactionManager
	returnRepo *mockRepo.MockReturnRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestReturnService(t *testing.T) returnServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	returnRepo := mockRepo.NewMockReturnRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewReturnService(ReturnServiceParams{
		TxManager:  txManager,
		ReturnRepo: returnRepo,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return returnServiceFixtures{
		service:    service,
		txManager:  txManager,
		returnRepo: returnRepo,
		publisher:  publisher,
	}
}

func TestReturnService_RequestReturn_Success(t *testing.T) {
	fx := createTestReturnService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.RequestReturnInput{
		UserID: userID,
		Lines:  []usecase.ReturnLineInput{{ManufacturingID: "MFG-001", Quantity: 2}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockReturnRepo := mockRepo.NewMockReturnRepository(t)
			mockSequenceRepo := mockRepo.NewMockSequenceRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewReturnRepository().Return(mockReturnRepo)
			mockFactory.EXPECT().NewSequenceRepository().Return(mockSequenceRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)

			// Returned quantities restock with a positive delta.
			mockProductRepo.EXPECT().AdjustStock(ctx, "MFG-001", 2).Return(nil)

			mockSequenceRepo.EXPECT().Issue(ctx, bizkey.Return).Return("RID000001", nil)

			mockReturnRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Return")).
				Run(func(ctx context.Context, ret *entity.Return) {
					assert.Equal(t, "RID000001", ret.Key)
					assert.Equal(t, entity.PaymentStatusReturn, ret.PaymentStatus)
					require.Len(t, ret.Items, 1)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderActivity(ctx, mock.AnythingOfType("*service.OrderActivityEvent")).
		Run(func(ctx context.Context, event *service.OrderActivityEvent) {
			assert.Equal(t, service.ActivityReturnRequested, event.Activity)
			assert.Equal(t, "RID000001", event.RecordKey)
		}).
		Return(nil)

	ret, err := fx.service.RequestReturn(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "RID000001", ret.Key)
	assert.Equal(t, entity.PaymentStatusReturn, ret.PaymentStatus)
}

func TestReturnService_RequestReturn_EmptyLines(t *testing.T) {
	fx := createTestReturnService(t)

	ret, err := fx.service.RequestReturn(context.Background(), usecase.RequestReturnInput{UserID: uuid.New()})

	assert.Error(t, err)
	assert.Nil(t, ret)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyLineItems))
}

func TestReturnService_RequestReturn_UnknownProduct(t *testing.T) {
	fx := createTestReturnService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewReturnRepository().Return(mockRepo.NewMockReturnRepository(t))
			mockFactory.EXPECT().NewSequenceRepository().Return(mockRepo.NewMockSequenceRepository(t))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)

			mockProductRepo.EXPECT().
				AdjustStock(ctx, "MFG-404", 1).
				Return(repository.ErrProductNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProductNotFound, "unknown product MFG-404"))

	ret, err := fx.service.RequestReturn(ctx, usecase.RequestReturnInput{
		UserID: userID,
		Lines:  []usecase.ReturnLineInput{{ManufacturingID: "MFG-404", Quantity: 1}},
	})

	assert.Error(t, err)
	assert.Nil(t, ret)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReturnService_GetReturn_NotFound(t *testing.T) {
	fx := createTestReturnService(t)

	ctx := context.Background()

	fx.returnRepo.EXPECT().FindByKey(ctx, "RID000404").Return(nil, repository.ErrReturnNotFound)

	ret, err := fx.service.GetReturn(ctx, "RID000404")

	assert.Error(t, err)
	assert.Nil(t, ret)
	assert.True(t, errors.Is(err, domainerrors.ErrReturnNotFound))
}
