package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizops/internal/delivery/context"
	"bizops/internal/domain/bizkey"
	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/domain/service"
	"bizops/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPayment records a settlement against an order. The outstanding
// check, key issuance, insert and the order's payment-status update all
// run in one transaction: two concurrent payments cannot jointly overpay
// an order, because the second one re-reads the committed total.
func (srv *paymentService) RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*entity.Payment, error) {
	srv.log(ctx).Info("Recording payment", slog.String("orderKey", input.OrderKey), slog.Float64("amount", input.Amount))

	if input.OrderKey == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order key is required")
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	var recorded *entity.Payment
	var payerID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		paymentRepo := repoFactory.NewPaymentRepository()
		sequenceRepo := repoFactory.NewSequenceRepository()

		order, err := orderRepo.FindByKey(ctx, input.OrderKey)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
			}

			return errors.Wrap(err, "failed to load order for payment")
		}

		paidSoFar, err := paymentRepo.TotalPaidForOrder(ctx, order.ID)
		if err != nil {
			return errors.Wrap(err, "failed to total existing payments")
		}

		outstanding := order.TotalAmount - paidSoFar
		if input.Amount > outstanding {
			return errors.Wrapf(domainerrors.ErrPaymentExceedsOutstanding,
				"amount %.2f exceeds outstanding %.2f", input.Amount, outstanding)
		}

		key, err := sequenceRepo.Issue(ctx, bizkey.Payment)
		if err != nil {
			return errors.Wrap(err, "failed to issue payment key")
		}

		payment := &entity.Payment{
			Key:      key,
			OrderID:  order.ID,
			OrderKey: order.Key,
			Amount:   input.Amount,
			Method:   input.Method,
			Remark:   input.Remark,
		}

		if err := paymentRepo.Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		// Move the order to Partial or Paid depending on the new total.
		newStatus := entity.PaymentStatusPartial
		if paidSoFar+input.Amount >= order.TotalAmount {
			newStatus = entity.PaymentStatusPaid
		}
		if err := orderRepo.UpdatePaymentStatus(ctx, order.Key, newStatus); err != nil {
			return errors.Wrap(err, "failed to update order payment status")
		}

		recorded = payment
		payerID = order.UserID.String()

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record payment", slog.String("orderKey", input.OrderKey), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Payment recorded", slog.String("paymentKey", recorded.Key), slog.String("orderKey", recorded.OrderKey))

	if srv.publisher != nil {
		event := &service.OrderActivityEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			Activity:  service.ActivityPaymentRecorded,
			RecordKey: recorded.Key,
			OrderKey:  recorded.OrderKey,
			UserID:    payerID,
			Amount:    recorded.Amount,
		}
		if err := srv.publisher.PublishOrderActivity(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish payment activity", slog.String("recordKey", recorded.Key), slog.Any("error", err))
		}
	}

	return recorded, nil
}

// GetPayment retrieves a single payment by its business key.
func (srv *paymentService) GetPayment(ctx context.Context, key string) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "payment lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// ListPayments retrieves all payments, most recent first.
func (srv *paymentService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// ListOrderPayments retrieves the payments recorded against an order.
func (srv *paymentService) ListOrderPayments(ctx context.Context, orderKey string) ([]*entity.Payment, error) {
	order, err := srv.orderRepo.FindByKey(ctx, orderKey)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	payments, err := srv.paymentRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order payments")
	}

	return payments, nil
}

// PaymentReceiptQR renders the payment's receipt reference as a PNG QR code.
func (srv *paymentService) PaymentReceiptQR(ctx context.Context, key string) ([]byte, error) {
	payment, err := srv.GetPayment(ctx, key)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePaymentQR(payment.Key, payment.OrderKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt QR code")
	}

	return png, nil
}
