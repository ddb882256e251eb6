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

// returnRepository implements the repository.ReturnRepository interface.
type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository is the constructor for returnRepository.
func NewReturnRepository(db *gorm.DB) repository.ReturnRepository {
	return &returnRepository{
		db: db,
	}
}

// Create persists a new return together with its line items.
func (repo *returnRepository) Create(ctx context.Context, ret *entity.Return) error {
	returnM := fromReturnDomain(ret)

	if err := repo.db.WithContext(ctx).Create(returnM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("return key already issued")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create return")
	}

	ret.ID = returnM.ID
	ret.CreatedAt = returnM.CreatedAt
	for i, itemM := range returnM.Items {
		ret.Items[i].ID = itemM.ID
		ret.Items[i].ReturnID = itemM.ReturnID
	}

	return nil
}

// FindByKey retrieves a single return, with items, by its business key.
func (repo *returnRepository) FindByKey(ctx context.Context, key string) (*entity.Return, error) {
	var returnM model.ReturnModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("return_key = ?", key).
		First(&returnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReturnNotFound
		}

		return nil, errors.Wrap(err, "failed to find return by key")
	}

	return toReturnDomain(&returnM), nil
}

// List retrieves all returns, most recent first.
func (repo *returnRepository) List(ctx context.Context) ([]*entity.Return, error) {
	var returnModels []*model.ReturnModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&returnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list returns")
	}

	return toReturnDomainSlice(returnModels), nil
}

// ListByUserID retrieves a user's returns, most recent first.
func (repo *returnRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Return, error) {
	var returnModels []*model.ReturnModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&returnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list returns by user")
	}

	return toReturnDomainSlice(returnModels), nil
}

// LastKey returns the highest issued return key, read from the primary.
func (repo *returnRepository) LastKey(ctx context.Context) (string, error) {
	var returnM model.ReturnModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Select("return_key").
		Order("length(return_key) DESC, return_key DESC").
		First(&returnM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to find last return key")
	}

	return returnM.Key, nil
}

// --- Mapper Functions ---

func toReturnDomain(data *model.ReturnModel) *entity.Return {
	if data == nil {
		return nil
	}

	ret := &entity.Return{
		ID:            data.ID,
		Key:           data.Key,
		UserID:        data.UserID,
		ReturnDate:    data.ReturnDate,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
	}

	ret.Items = make([]*entity.ReturnItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		ret.Items = append(ret.Items, &entity.ReturnItem{
			ID:              itemM.ID,
			ReturnID:        itemM.ReturnID,
			ManufacturingID: itemM.ManufacturingID,
			Quantity:        itemM.Quantity,
		})
	}

	return ret
}

func toReturnDomainSlice(models []*model.ReturnModel) []*entity.Return {
	returns := make([]*entity.Return, 0, len(models))
	for _, returnM := range models {
		returns = append(returns, toReturnDomain(returnM))
	}

	return returns
}

func fromReturnDomain(data *entity.Return) *model.ReturnModel {
	if data == nil {
		return nil
	}

	returnM := &model.ReturnModel{
		ID:            data.ID,
		Key:           data.Key,
		UserID:        data.UserID,
		ReturnDate:    data.ReturnDate,
		PaymentStatus: string(data.PaymentStatus),
	}

	returnM.Items = make([]model.ReturnItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		returnM.Items = append(returnM.Items, model.ReturnItemModel{
			ManufacturingID: item.ManufacturingID,
			Quantity:        item.Quantity,
		})
	}

	return returnM
}
