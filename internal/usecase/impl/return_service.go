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

// returnService implements the ReturnUsecase interface.
type returnService struct {
	txManager  repository.TransactionManager
	returnRepo repository.ReturnRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ReturnServiceParams holds dependencies for ReturnService, injected by Fx.
type ReturnServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReturnRepo repository.ReturnRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewReturnService is the constructor for returnService.
func NewReturnService(params ReturnServiceParams) usecase.ReturnUsecase {
	return &returnService{
		txManager:  params.TxManager,
		returnRepo: params.ReturnRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *returnService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReturn records a return. Key issuance, the insert and the stock
// restocking run in one transaction. Return records carry no balance, so
// their payment status is fixed at Return.
func (srv *returnService) RequestReturn(ctx context.Context, input usecase.RequestReturnInput) (*entity.Return, error) {
	srv.log(ctx).Info("Recording return", slog.Any("userID", input.UserID))

	if len(input.Lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyLineItems, "return has no line items")
	}

	var recorded *entity.Return
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		productRepo := repoFactory.NewProductRepository()
		returnRepo := repoFactory.NewReturnRepository()
		sequenceRepo := repoFactory.NewSequenceRepository()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "return owner lookup failed")
			}

			return errors.Wrap(err, "failed to load return owner")
		}

		items := make([]*entity.ReturnItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			if line.Quantity <= 0 {
				return domainerrors.ErrValidationFailed.WithDetails("line quantity must be positive")
			}

			// Returned goods go back into the catalog's stock.
			if err := productRepo.AdjustStock(ctx, line.ManufacturingID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrapf(domainerrors.ErrProductNotFound, "unknown product %s", line.ManufacturingID)
				}

				return errors.Wrap(err, "failed to restock returned product")
			}

			items = append(items, &entity.ReturnItem{
				ManufacturingID: line.ManufacturingID,
				Quantity:        line.Quantity,
			})
		}

		key, err := sequenceRepo.Issue(ctx, bizkey.Return)
		if err != nil {
			return errors.Wrap(err, "failed to issue return key")
		}

		ret := &entity.Return{
			Key:           key,
			UserID:        input.UserID,
			ReturnDate:    time.Now(),
			PaymentStatus: entity.PaymentStatusReturn,
			Items:         items,
		}

		if err := returnRepo.Create(ctx, ret); err != nil {
			return errors.Wrap(err, "failed to create return")
		}
		recorded = ret

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record return", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Return recorded", slog.String("returnKey", recorded.Key))

	if srv.publisher != nil {
		event := &service.OrderActivityEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			Activity:  service.ActivityReturnRequested,
			RecordKey: recorded.Key,
			UserID:    recorded.UserID.String(),
		}
		if err := srv.publisher.PublishOrderActivity(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish return activity", slog.String("recordKey", recorded.Key), slog.Any("error", err))
		}
	}

	return recorded, nil
}

// GetReturn retrieves a single return by its business key.
func (srv *returnService) GetReturn(ctx context.Context, key string) (*entity.Return, error) {
	ret, err := srv.returnRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrReturnNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReturnNotFound, "return lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find return")
	}

	return ret, nil
}

// ListReturns retrieves all returns, most recent first.
func (srv *returnService) ListReturns(ctx context.Context) ([]*entity.Return, error) {
	returns, err := srv.returnRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list returns")
	}

	return returns, nil
}

// ListUserReturns retrieves a user's returns, most recent first.
func (srv *returnService) ListUserReturns(ctx context.Context, userID uuid.UUID) ([]*entity.Return, error) {
	returns, err := srv.returnRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user returns")
	}

	return returns, nil
}
