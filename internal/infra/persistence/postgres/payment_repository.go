package postgres

import (
	"context"

	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment key already issued")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByKey retrieves a single payment by its business key.
func (repo *paymentRepository) FindByKey(ctx context.Context, key string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("payment_key = ?", key).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by key")
	}

	return toPaymentDomain(&paymentM), nil
}

// List retrieves all payments, most recent first.
func (repo *paymentRepository) List(ctx context.Context) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentDomainSlice(paymentModels), nil
}

// ListByOrderID retrieves the payments recorded against an order, oldest first.
func (repo *paymentRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by order")
	}

	return toPaymentDomainSlice(paymentModels), nil
}

// TotalPaidForOrder sums the amounts of all payments against an order.
// Reads from the primary so the outstanding check sees committed payments.
func (repo *paymentRepository) TotalPaidForOrder(ctx context.Context, orderID uuid.UUID) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.PaymentModel{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum payments for order")
	}

	return total, nil
}

// LastKey returns the highest issued payment key, read from the primary.
func (repo *paymentRepository) LastKey(ctx context.Context) (string, error) {
	var paymentM model.PaymentModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Select("payment_key").
		Order("length(payment_key) DESC, payment_key DESC").
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to find last payment key")
	}

	return paymentM.Key, nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		Key:       data.Key,
		OrderID:   data.OrderID,
		OrderKey:  data.OrderKey,
		Amount:    data.Amount,
		Method:    data.Method,
		Remark:    data.Remark,
		CreatedAt: data.CreatedAt,
	}
}

func toPaymentDomainSlice(models []*model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(models))
	for _, paymentM := range models {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:       data.ID,
		Key:      data.Key,
		OrderID:  data.OrderID,
		OrderKey: data.OrderKey,
		Amount:   data.Amount,
		Method:   data.Method,
		Remark:   data.Remark,
	}
}
