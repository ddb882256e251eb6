package usecase

import (
	"context"

	"bizops/internal/domain/entity"
)

// RecordPaymentInput defines the data required to record a payment against
// an order. OrderKey is the order's business key ("OD001").
type RecordPaymentInput struct {
	OrderKey string
	Amount   float64
	Method   string
	Remark   string
}

// PaymentUsecase defines the interface for payment operations. Payments are
// looked up by their business key ("PID00000001").
type PaymentUsecase interface {
	// RecordPayment records a settlement against an order. The amount must
	// not exceed the order's outstanding total; the check and the insert
	// run in one transaction.
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*entity.Payment, error)

	GetPayment(ctx context.Context, key string) (*entity.Payment, error)
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
	ListOrderPayments(ctx context.Context, orderKey string) ([]*entity.Payment, error)

	// PaymentReceiptQR renders the payment's receipt reference as a PNG QR code.
	PaymentReceiptQR(ctx context.Context, key string) ([]byte, error)
}
