package repository

import (
	"context"

	"bizops/internal/domain/bizkey"
)

// SequenceRepository issues business keys from a per-type counter row.
// Issue must be called inside the same transaction as the insert that
// consumes the key: the implementation locks the counter row so two
// concurrent creates can never be handed the same key.
type SequenceRepository interface {
	// Issue reserves and returns the next key for the given type.
	Issue(ctx context.Context, keyType bizkey.Type) (string, error)
}
