package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bizops/internal/delivery/context"
	"bizops/internal/domain/bizkey"
	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/domain/service"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates an order. Line resolution, stock reservation, key
// issuance and the insert all run in one transaction, so a failed order
// never consumes stock or a business key visible to later orders. The
// activity event and push notification go out only after commit.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Placing order", slog.Any("userID", input.UserID), slog.Bool("fromCart", input.FromCart))

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()
		cartRepo := repoFactory.NewCartRepository()
		sequenceRepo := repoFactory.NewSequenceRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "order owner lookup failed")
			}

			return errors.Wrap(err, "failed to load order owner")
		}

		lines, cartID, err := srv.resolveLines(ctx, cartRepo, input)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyLineItems, "order has no line items")
		}

		items, total, err := srv.priceAndReserve(ctx, productRepo, lines)
		if err != nil {
			return err
		}

		key, err := sequenceRepo.Issue(ctx, bizkey.Order)
		if err != nil {
			return errors.Wrap(err, "failed to issue order key")
		}

		now := time.Now()
		order := &entity.Order{
			Key:           key,
			UserID:        user.ID,
			CompanyName:   user.CompanyName(),
			Status:        entity.OrderStatusProcessing,
			PaymentStatus: entity.PaymentStatusPending,
			OrderDate:     now,
			OverdueDate:   input.OverdueDate,
			TotalAmount:   total,
			Items:         items,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// The cart is consumed only when the order actually commits.
		if input.FromCart && cartID != uuid.Nil {
			if err := cartRepo.Clear(ctx, cartID); err != nil {
				return errors.Wrap(err, "failed to clear cart after order")
			}
		}

		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed", slog.String("orderKey", placed.Key), slog.Any("userID", placed.UserID))

	// The notifier worker picks this up and pushes to the user's device.
	srv.publishActivity(ctx, &service.OrderActivityEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Activity:  service.ActivityOrderPlaced,
		RecordKey: placed.Key,
		UserID:    placed.UserID.String(),
		Amount:    placed.TotalAmount,
	})

	return placed, nil
}

// resolveLines returns the requested order lines, reading them from the
// user's cart when FromCart is set. The cart ID is returned so the caller
// can clear the cart inside the same transaction.
func (srv *orderService) resolveLines(ctx context.Context, cartRepo repository.CartRepository, input usecase.PlaceOrderInput) ([]usecase.OrderLineInput, uuid.UUID, error) {
	if !input.FromCart {
		return input.Lines, uuid.Nil, nil
	}

	cart, err := cartRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, uuid.Nil, errors.Wrap(domainerrors.ErrEmptyLineItems, "cart is empty")
		}

		return nil, uuid.Nil, errors.Wrap(err, "failed to load cart for order")
	}

	lines := make([]usecase.OrderLineInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, usecase.OrderLineInput{
			ManufacturingID: item.ManufacturingID,
			Quantity:        item.Quantity,
		})
	}

	return lines, cart.ID, nil
}

// priceAndReserve validates each line against the catalog, captures unit
// prices and decrements stock. Stock adjustments ride the surrounding
// transaction, so any failure rolls back all reservations.
func (srv *orderService) priceAndReserve(ctx context.Context, productRepo repository.ProductRepository, lines []usecase.OrderLineInput) ([]*entity.OrderItem, float64, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, 0, domainerrors.ErrValidationFailed.WithDetails("line quantity must be positive")
		}
		ids = append(ids, line.ManufacturingID)
	}

	products, err := productRepo.FindByManufacturingIDs(ctx, ids)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load products for order")
	}

	byID := make(map[string]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ManufacturingID] = product
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		product, ok := byID[line.ManufacturingID]
		if !ok {
			return nil, 0, errors.Wrapf(domainerrors.ErrProductNotFound, "unknown product %s", line.ManufacturingID)
		}

		if err := productRepo.AdjustStock(ctx, line.ManufacturingID, -line.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, 0, errors.Wrapf(domainerrors.ErrProductNotFound, "unknown product %s", line.ManufacturingID)
			}

			return nil, 0, errors.Wrapf(domainerrors.ErrInsufficientStock, "insufficient stock for %s", line.ManufacturingID)
		}

		items = append(items, &entity.OrderItem{
			ManufacturingID: line.ManufacturingID,
			Quantity:        line.Quantity,
			UnitPrice:       product.UnitPrice,
		})
		total += product.UnitPrice * float64(line.Quantity)
	}

	return items, total, nil
}

// GetOrder retrieves a single order by its business key.
func (srv *orderService) GetOrder(ctx context.Context, key string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders retrieves all orders, most recent first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListUserOrders retrieves a user's orders, most recent first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// UpdateOrderStatus sets the fulfilment status of an order.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, key string, status entity.OrderStatus) (*entity.Order, error) {
	switch status {
	case entity.OrderStatusProcessing, entity.OrderStatusCompleted, entity.OrderStatusCancelled:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, key, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	return srv.GetOrder(ctx, key)
}

// publishActivity publishes an activity event. Publishing is best-effort:
// the record is already committed, so failures are logged and swallowed.
func (srv *orderService) publishActivity(ctx context.Context, event *service.OrderActivityEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishOrderActivity(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order activity",
			slog.String("activity", event.Activity),
			slog.String("recordKey", event.RecordKey),
			slog.Any("error", err),
		)
	}
}
