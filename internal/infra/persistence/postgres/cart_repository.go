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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's cart with its items.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user ID")
	}

	return toCartDomain(&cartM), nil
}

// GetOrCreate retrieves the user's cart, creating an empty one if none exists.
func (repo *cartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := repo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, err
	}

	cartM := &model.CartModel{UserID: userID}
	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		// A concurrent request may have created the cart first.
		if isUniqueConstraintViolation(err) {
			return repo.FindByUserID(ctx, userID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return toCartDomain(cartM), nil
}

// UpsertItem sets the quantity for a product line, inserting or replacing in place.
func (repo *cartRepository) UpsertItem(ctx context.Context, cartID uuid.UUID, manufacturingID string, quantity int) error {
	itemM := &model.CartItemModel{
		CartID:          cartID,
		ManufacturingID: manufacturingID,
		Quantity:        quantity,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "manufacturing_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// RemoveItem deletes a single product line from the cart.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID uuid.UUID, manufacturingID string) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND manufacturing_id = ?", cartID, manufacturingID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// Clear removes every item from the cart.
func (repo *cartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	cart := &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		UpdatedAt: data.UpdatedAt,
	}

	cart.Items = make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		cart.Items = append(cart.Items, &entity.CartItem{
			ID:              itemM.ID,
			CartID:          itemM.CartID,
			ManufacturingID: itemM.ManufacturingID,
			Quantity:        itemM.Quantity,
		})
	}

	return cart
}
