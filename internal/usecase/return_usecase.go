package usecase

import (
	"context"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// ReturnLineInput is one returned product line.
type ReturnLineInput struct {
	ManufacturingID string
	Quantity        int
}

// RequestReturnInput defines the data required to record a return.
type RequestReturnInput struct {
	UserID uuid.UUID
	Lines  []ReturnLineInput
}

// ReturnUsecase defines the interface for return operations. Returns are
// looked up by their business key ("RID000042").
type ReturnUsecase interface {
	RequestReturn(ctx context.Context, input RequestReturnInput) (*entity.Return, error)
	GetReturn(ctx context.Context, key string) (*entity.Return, error)
	ListReturns(ctx context.Context) ([]*entity.Return, error)
	ListUserReturns(ctx context.Context, userID uuid.UUID) ([]*entity.Return, error)
}
