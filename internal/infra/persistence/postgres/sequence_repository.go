package postgres

import (
	"context"

	"bizops/internal/domain/bizkey"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/repository"
	"bizops/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// sequenceRepository implements the repository.SequenceRepository interface.
// It must be used inside the transaction that also inserts the record
// consuming the key: the FOR UPDATE row lock serializes concurrent issuers,
// and a rollback releases the key together with the record.
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{
		db: db,
	}
}

// Issue reserves and returns the next business key for the given type.
func (repo *sequenceRepository) Issue(ctx context.Context, keyType bizkey.Type) (string, error) {
	var seqM model.RecordSequenceModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ?", keyType.Prefix).
		First(&seqM).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.Wrap(err, "failed to lock sequence row")
		}

		// No counter row yet: seed it from the record table so keys issued
		// over pre-existing data continue the numbering instead of restarting.
		last, err := lastIssuedKey(ctx, keyType,
			NewOrderRepository(repo.db),
			NewReturnRepository(repo.db),
			NewPaymentRepository(repo.db))
		if err != nil {
			return "", errors.Wrap(err, "failed to read last issued key")
		}

		first := seedKey(keyType, last)
		seqM = model.RecordSequenceModel{Prefix: keyType.Prefix, LastKey: first}
		if err := repo.db.WithContext(ctx).Create(&seqM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				// Lost the seeding race; retry against the now-existing row.
				return repo.Issue(ctx, keyType)
			}

			return "", domainerrors.NewDatabaseExecuteError(err, "failed to seed sequence row")
		}

		return first, nil
	}

	next := keyType.Next(seqM.LastKey)
	if err := repo.db.WithContext(ctx).
		Model(&model.RecordSequenceModel{}).
		Where("prefix = ?", keyType.Prefix).
		Update("last_key", next).Error; err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to advance sequence row")
	}

	return next, nil
}

// lastIssuedKey reads the highest business key already present in the
// record table owning keyType. Returns the empty string when the table is
// empty or the type is unknown.
func lastIssuedKey(
	ctx context.Context,
	keyType bizkey.Type,
	orders repository.OrderRepository,
	returns repository.ReturnRepository,
	payments repository.PaymentRepository,
) (string, error) {
	switch keyType.Prefix {
	case bizkey.Order.Prefix:
		return orders.LastKey(ctx)
	case bizkey.Return.Prefix:
		return returns.LastKey(ctx)
	case bizkey.Payment.Prefix:
		return payments.LastKey(ctx)
	default:
		return "", nil
	}
}

// seedKey is the first key to issue for a type whose counter row does not
// exist yet: the successor of the highest key already stored, or the
// type's first key on a fresh table.
func seedKey(keyType bizkey.Type, last string) string {
	if last == "" {
		return keyType.First()
	}

	return keyType.Next(last)
}
