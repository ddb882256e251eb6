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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The business key collided; the sequence row lock should make
			// this unreachable.
			return domainerrors.ErrConflict.WrapMessage("order key already issued")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByKey retrieves a single order, with items, by its business key.
func (repo *orderRepository) FindByKey(ctx context.Context, key string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_key = ?", key).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by key")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves all orders, most recent first.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// ListByUserID retrieves a user's orders, most recent first.
func (repo *orderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// LastKey returns the highest issued order key. The read is forced to the
// primary so a fresh commit is always visible.
func (repo *orderRepository) LastKey(ctx context.Context) (string, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Select("order_key").
		Order("length(order_key) DESC, order_key DESC").
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to find last order key")
	}

	return orderM.Key, nil
}

// UpdateStatus sets the fulfilment status of an order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, key string, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_key = ?", key).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus sets the settlement status of an order.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, key string, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_key = ?", key).
		Update("payment_status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		Key:           data.Key,
		UserID:        data.UserID,
		CompanyName:   data.CompanyName,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		OrderDate:     data.OrderDate,
		OverdueDate:   data.OverdueDate,
		TotalAmount:   data.TotalAmount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	order.Items = make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:              itemM.ID,
			OrderID:         itemM.OrderID,
			ManufacturingID: itemM.ManufacturingID,
			Quantity:        itemM.Quantity,
			UnitPrice:       itemM.UnitPrice,
		})
	}

	return order
}

func toOrderDomainSlice(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		Key:           data.Key,
		UserID:        data.UserID,
		CompanyName:   data.CompanyName,
		Status:        string(data.Status),
		PaymentStatus: string(data.PaymentStatus),
		OrderDate:     data.OrderDate,
		OverdueDate:   data.OverdueDate,
		TotalAmount:   data.TotalAmount,
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ManufacturingID: item.ManufacturingID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
		})
	}

	return orderM
}
