package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/payment"
	"github.com/acarder/cardshop/internal/repo"
)

func newTestWalletService(t *testing.T) (*WalletService, *repo.GormRepo) {
	store := newTestStore(t)
	svc := &WalletService{
		Store:    store,
		Verifier: payment.NewStubVerifier(),
	}
	return svc, store
}

func TestWalletService_Deposit(t *testing.T) {
	svc, store := newTestWalletService(t)
	ctx := context.Background()

	user := seedUser(t, store, "alice", "pw", 0)

	require.NoError(t, svc.Deposit(ctx, user.ID, 500, "TXN-1"))

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.WalletBalance)

	txns, err := svc.Transactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, models.TxnTypeDeposit, txns[0].Type)
	assert.Equal(t, "UPI Load: TXN-1", txns[0].Description)
}

func TestWalletService_Deposit_Validation(t *testing.T) {
	svc, store := newTestWalletService(t)
	ctx := context.Background()

	user := seedUser(t, store, "alice", "pw", 0)

	assert.ErrorIs(t, svc.Deposit(ctx, user.ID, 0, "TXN-1"), ErrValidation)
	assert.ErrorIs(t, svc.Deposit(ctx, user.ID, -100, "TXN-1"), ErrValidation)
	// The stub verifier refuses an empty transaction reference.
	assert.ErrorIs(t, svc.Deposit(ctx, user.ID, 100, ""), ErrValidation)
	assert.ErrorIs(t, svc.Deposit(ctx, "missing", 100, "TXN-1"), ErrNotFound)

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.WalletBalance)
}

func TestWalletService_AdminAdjust(t *testing.T) {
	svc, store := newTestWalletService(t)
	ctx := context.Background()

	user := seedUser(t, store, "alice", "pw", 100)

	require.NoError(t, svc.AdminAdjust(ctx, models.RoleAdmin, user.ID, -300))

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-200), got.WalletBalance, "admin adjustment may go negative")

	txns, err := svc.Transactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, models.TxnTypeAdminAdjustment, txns[0].Type)
	assert.Equal(t, "Admin Adjustment", txns[0].Description)
}

func TestWalletService_AdminAdjust_Denied(t *testing.T) {
	svc, store := newTestWalletService(t)
	ctx := context.Background()

	user := seedUser(t, store, "alice", "pw", 100)

	assert.ErrorIs(t, svc.AdminAdjust(ctx, models.RoleUser, user.ID, 500), ErrForbidden)

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.WalletBalance)
}

func TestWalletService_AdminAdjust_Validation(t *testing.T) {
	svc, store := newTestWalletService(t)
	ctx := context.Background()

	user := seedUser(t, store, "alice", "pw", 100)

	assert.ErrorIs(t, svc.AdminAdjust(ctx, models.RoleAdmin, user.ID, 0), ErrValidation)
	assert.ErrorIs(t, svc.AdminAdjust(ctx, models.RoleAdmin, "missing", 50), ErrNotFound)
}
