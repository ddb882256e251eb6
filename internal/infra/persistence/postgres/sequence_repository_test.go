package postgres

import (
	"context"
	"testing"

	"bizops/internal/domain/bizkey"
	mockRepo "bizops/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastIssuedKey_ContinuesExistingNumbering(t *testing.T) {
	ctx := context.Background()

	orders := mockRepo.NewMockOrderRepository(t)
	returns := mockRepo.NewMockReturnRepository(t)
	payments := mockRepo.NewMockPaymentRepository(t)

	orders.EXPECT().LastKey(ctx).Return("OD041", nil)

	last, err := lastIssuedKey(ctx, bizkey.Order, orders, returns, payments)

	require.NoError(t, err)
	assert.Equal(t, "OD041", last)
	// A counter seeded over pre-existing records issues the successor,
	// never a restarted OD001.
	assert.Equal(t, "OD042", seedKey(bizkey.Order, last))
}

func TestLastIssuedKey_DispatchesPerKeyType(t *testing.T) {
	ctx := context.Background()

	orders := mockRepo.NewMockOrderRepository(t)
	returns := mockRepo.NewMockReturnRepository(t)
	payments := mockRepo.NewMockPaymentRepository(t)

	returns.EXPECT().LastKey(ctx).Return("RID000042", nil)
	payments.EXPECT().LastKey(ctx).Return("", nil)

	last, err := lastIssuedKey(ctx, bizkey.Return, orders, returns, payments)
	require.NoError(t, err)
	assert.Equal(t, "RID000043", seedKey(bizkey.Return, last))

	last, err = lastIssuedKey(ctx, bizkey.Payment, orders, returns, payments)
	require.NoError(t, err)
	assert.Equal(t, "PID00000001", seedKey(bizkey.Payment, last))
}

func TestSeedKey_FreshTable(t *testing.T) {
	assert.Equal(t, "OD001", seedKey(bizkey.Order, ""))
	assert.Equal(t, "RID000001", seedKey(bizkey.Return, ""))
	assert.Equal(t, "PID00000001", seedKey(bizkey.Payment, ""))
}
