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

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockSvc.MockEventPublisher
	qrcode      *mockSvc.MockQRCodeService
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		OrderRepo:   orderRepo,
		Publisher:   publisher,
		QRCode:      qrcode,
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     service,
		txManager:   txManager,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
		qrcode:      qrcode,
	}
}

func TestPaymentService_RecordPayment_PartialThenStatusPartial(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			mockSequenceRepo := mockRepo.NewMockSequenceRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
			mockFactory.EXPECT().NewSequenceRepository().Return(mockSequenceRepo)

			mockOrderRepo.EXPECT().
				FindByKey(ctx, "OD001").
				Return(&entity.Order{
					ID:          orderID,
					Key:         "OD001",
					UserID:      userID,
					TotalAmount: 100,
				}, nil)

			mockPaymentRepo.EXPECT().TotalPaidForOrder(ctx, orderID).Return(0.0, nil)

			mockSequenceRepo.EXPECT().Issue(ctx, bizkey.Payment).Return("PID00000001", nil)

			mockPaymentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Payment")).
				Run(func(ctx context.Context, payment *entity.Payment) {
					assert.Equal(t, "PID00000001", payment.Key)
					assert.Equal(t, "OD001", payment.OrderKey)
					assert.Equal(t, 40.0, payment.Amount)
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				UpdatePaymentStatus(ctx, "OD001", entity.PaymentStatusPartial).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderActivity(ctx, mock.AnythingOfType("*service.OrderActivityEvent")).
		Run(func(ctx context.Context, event *service.OrderActivityEvent) {
			assert.Equal(t, service.ActivityPaymentRecorded, event.Activity)
			assert.Equal(t, "PID00000001", event.RecordKey)
			assert.Equal(t, "OD001", event.OrderKey)
		}).
		Return(nil)

	payment, err := fx.service.RecordPayment(ctx, usecase.RecordPaymentInput{
		OrderKey: "OD001",
		Amount:   40,
		Method:   "bank_transfer",
	})

	require.NoError(t, err)
	assert.Equal(t, "PID00000001", payment.Key)
}

func TestPaymentService_RecordPayment_SettlesOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			mockSequenceRepo := mockRepo.NewMockSequenceRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
			mockFactory.EXPECT().NewSequenceRepository().Return(mockSequenceRepo)

			mockOrderRepo.EXPECT().
				FindByKey(ctx, "OD001").
				Return(&entity.Order{ID: orderID, Key: "OD001", TotalAmount: 100}, nil)

			mockPaymentRepo.EXPECT().TotalPaidForOrder(ctx, orderID).Return(40.0, nil)
			mockSequenceRepo.EXPECT().Issue(ctx, bizkey.Payment).Return("PID00000002", nil)
			mockPaymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

			// 40 + 60 settles the order in full.
			mockOrderRepo.EXPECT().
				UpdatePaymentStatus(ctx, "OD001", entity.PaymentStatusPaid).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderActivity(ctx, mock.AnythingOfType("*service.OrderActivityEvent")).
		Return(nil)

	payment, err := fx.service.RecordPayment(ctx, usecase.RecordPaymentInput{OrderKey: "OD001", Amount: 60})

	require.NoError(t, err)
	assert.Equal(t, "PID00000002", payment.Key)
}

func TestPaymentService_RecordPayment_ExceedsOutstanding(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
			mockFactory.EXPECT().NewSequenceRepository().Return(mockRepo.NewMockSequenceRepository(t))

			mockOrderRepo.EXPECT().
				FindByKey(ctx, "OD001").
				Return(&entity.Order{ID: orderID, Key: "OD001", TotalAmount: 100}, nil)

			mockPaymentRepo.EXPECT().TotalPaidForOrder(ctx, orderID).Return(80.0, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPaymentExceedsOutstanding, "amount 30.00 exceeds outstanding 20.00"))

	payment, err := fx.service.RecordPayment(ctx, usecase.RecordPaymentInput{OrderKey: "OD001", Amount: 30})

	assert.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentExceedsOutstanding))
}

func TestPaymentService_RecordPayment_NonPositiveAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	payment, err := fx.service.RecordPayment(context.Background(), usecase.RecordPaymentInput{OrderKey: "OD001", Amount: 0})

	assert.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_RecordPayment_OrderNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockRepo.NewMockPaymentRepository(t))
			mockFactory.EXPECT().NewSequenceRepository().Return(mockRepo.NewMockSequenceRepository(t))

			mockOrderRepo.EXPECT().FindByKey(ctx, "OD404").Return(nil, repository.ErrOrderNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed"))

	payment, err := fx.service.RecordPayment(ctx, usecase.RecordPaymentInput{OrderKey: "OD404", Amount: 10})

	assert.Error(t, err)
	assert.Nil(t, payment)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestPaymentService_PaymentReceiptQR(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.paymentRepo.EXPECT().
		FindByKey(ctx, "PID00000001").
		Return(&entity.Payment{Key: "PID00000001", OrderKey: "OD001"}, nil)

	fx.qrcode.EXPECT().
		GeneratePaymentQR("PID00000001", "OD001").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.PaymentReceiptQR(ctx, "PID00000001")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPaymentService_ListOrderPayments(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByKey(ctx, "OD001").
		Return(&entity.Order{ID: orderID, Key: "OD001"}, nil)

	fx.paymentRepo.EXPECT().
		ListByOrderID(ctx, orderID).
		Return([]*entity.Payment{{Key: "PID00000001", OrderKey: "OD001"}}, nil)

	payments, err := fx.service.ListOrderPayments(ctx, "OD001")

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "PID00000001", payments[0].Key)
}
