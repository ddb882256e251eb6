package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizops/internal/delivery/context"
	"bizops/internal/domain/entity"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart joined with catalog data. A user without
// a cart gets an empty view rather than an error.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &usecase.CartView{UserID: userID, Lines: []*usecase.CartLine{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return srv.buildCartView(ctx, userID, cart)
}

// SetItem sets the quantity of a product line. Quantity zero removes the
// line; the requested quantity is checked against catalog stock.
func (srv *cartService) SetItem(ctx context.Context, userID uuid.UUID, input usecase.CartItemInput) (*usecase.CartView, error) {
	srv.log(ctx).Debug("Setting cart item",
		slog.Any("userID", userID),
		slog.String("manufacturingID", input.ManufacturingID),
		slog.Int("quantity", input.Quantity),
	)

	if input.ManufacturingID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("manufacturing ID is required")
	}
	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByManufacturingID(ctx, input.ManufacturingID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
			}

			return errors.Wrap(err, "failed to find product for cart")
		}

		cart, err := cartRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		if input.Quantity == 0 {
			if err := cartRepo.RemoveItem(ctx, cart.ID, input.ManufacturingID); err != nil {
				return errors.Wrap(err, "failed to remove cart item")
			}

			return nil
		}

		if input.Quantity > product.StockOnHand {
			return errors.Wrap(domainerrors.ErrInsufficientStock, "requested quantity exceeds stock")
		}

		if err := cartRepo.UpsertItem(ctx, cart.ID, input.ManufacturingID, input.Quantity); err != nil {
			return errors.Wrap(err, "failed to set cart item")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to set cart item", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem drops one product line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, manufacturingID string) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &usecase.CartView{UserID: userID, Lines: []*usecase.CartLine{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	if err := srv.cartRepo.RemoveItem(ctx, cart.ID, manufacturingID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

// ClearCart removes every line from the user's cart. Clearing a missing
// cart is a no-op.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load cart")
	}

	if err := srv.cartRepo.Clear(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// buildCartView joins cart items with their catalog entries and totals the
// lines. Items whose product has vanished from the catalog are skipped.
func (srv *cartService) buildCartView(ctx context.Context, userID uuid.UUID, cart *entity.Cart) (*usecase.CartView, error) {
	view := &usecase.CartView{UserID: userID, Lines: []*usecase.CartLine{}}
	if len(cart.Items) == 0 {
		return view, nil
	}

	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ManufacturingID)
	}

	products, err := srv.productRepo.FindByManufacturingIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	byID := make(map[string]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ManufacturingID] = product
	}

	for _, item := range cart.Items {
		product, ok := byID[item.ManufacturingID]
		if !ok {
			srv.log(ctx).Warn("Cart references missing product", slog.String("manufacturingID", item.ManufacturingID))

			continue
		}

		view.Lines = append(view.Lines, &usecase.CartLine{Product: product, Quantity: item.Quantity})
		view.Total += product.UnitPrice * float64(item.Quantity)
	}

	return view, nil
}
