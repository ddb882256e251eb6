package repository

import (
	"context"
	"errors"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReturnNotFound is returned when a return record is not found.
var ErrReturnNotFound = errors.New("return not found")

// ReturnRepository defines the standard operations for return persistence.
type ReturnRepository interface {
	// Create persists a new return together with its line items.
	Create(ctx context.Context, ret *entity.Return) error

	// FindByKey retrieves a single return, with items, by its business key.
	FindByKey(ctx context.Context, key string) (*entity.Return, error)

	// List retrieves all returns, most recent first.
	List(ctx context.Context) ([]*entity.Return, error)

	// ListByUserID retrieves a user's returns, most recent first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Return, error)

	// LastKey returns the highest issued return business key, or the empty
	// string when no return exists yet.
	LastKey(ctx context.Context) (string, error)
}
