package casino

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fastprodman/wagerhouse/internal/chain"
	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
)

func TestWithdraw_FullBalance(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	wallet := new(mockWallet)
	svc := newTestService(store, wallet, new(mockOracle))

	seedAccount(t, svc, store, "alice", 90, 20)

	wallet.On("Transfer", mock.Anything, chain.TransferRequest{
		FromIndex: chain.PoolIndex,
		To:        "alice",
		Amount:    110,
		Fee:       testFee,
		Memo:      "withdraw:alice",
	}).Return("tx-w-1", nil)

	receipt, err := svc.Withdraw(context.Background(), "alice", 110)
	require.NoError(t, err)

	assert.Equal(t, int64(110), receipt.Amount)
	assert.Equal(t, "tx-w-1", receipt.TxID)
	assert.False(t, receipt.At.IsZero())

	rec := store.mustGet(t, "alice")
	assert.Zero(t, rec.Deposited)
	assert.Zero(t, rec.WinAmount)

	wallet.AssertExpectations(t)
}

func TestWithdraw_DebitsDepositedFirst(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	wallet := new(mockWallet)
	svc := newTestService(store, wallet, new(mockOracle))

	seedAccount(t, svc, store, "alice", 40, 20)

	wallet.On("Transfer", mock.Anything, mock.Anything).Return("tx-w-2", nil)

	_, err := svc.Withdraw(context.Background(), "alice", 30)
	require.NoError(t, err)

	rec := store.mustGet(t, "alice")
	assert.Equal(t, int64(10), rec.Deposited)
	assert.Equal(t, int64(20), rec.WinAmount)
}

func TestWithdraw_SpillsIntoWinnings(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	wallet := new(mockWallet)
	svc := newTestService(store, wallet, new(mockOracle))

	seedAccount(t, svc, store, "alice", 40, 20)

	wallet.On("Transfer", mock.Anything, mock.Anything).Return("tx-w-3", nil)

	_, err := svc.Withdraw(context.Background(), "alice", 50)
	require.NoError(t, err)

	rec := store.mustGet(t, "alice")
	assert.Zero(t, rec.Deposited)
	assert.Equal(t, int64(10), rec.WinAmount)
}

func TestWithdraw_ExceedsWithdrawable(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	wallet := new(mockWallet)
	svc := newTestService(store, wallet, new(mockOracle))

	seedAccount(t, svc, store, "alice", 90, 20)

	_, err := svc.Withdraw(context.Background(), "alice", 111)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	wallet.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)

	rec := store.mustGet(t, "alice")
	assert.Equal(t, int64(90), rec.Deposited)
	assert.Equal(t, int64(20), rec.WinAmount)
}

// A failed transfer debits nothing: the debit happens only after the
// transfer confirms.
func TestWithdraw_TransferFailureNoDebit(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	wallet := new(mockWallet)
	svc := newTestService(store, wallet, new(mockOracle))

	seedAccount(t, svc, store, "alice", 90, 20)

	wallet.On("Transfer", mock.Anything, mock.Anything).Return("", chain.ErrTransferFailed)

	_, err := svc.Withdraw(context.Background(), "alice", 50)
	require.ErrorIs(t, err, chain.ErrTransferFailed)

	rec := store.mustGet(t, "alice")
	assert.Equal(t, int64(90), rec.Deposited)
	assert.Equal(t, int64(20), rec.WinAmount)
}

func TestWithdraw_AccountNotFound(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	wallet := new(mockWallet)
	svc := newTestService(store, wallet, new(mockOracle))

	_, err := svc.Withdraw(context.Background(), "nobody", 10)
	require.ErrorIs(t, err, accounts.ErrAccountNotFound)

	wallet.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
}
