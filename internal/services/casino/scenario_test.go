package casino

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fastprodman/wagerhouse/internal/chain"
)

// Full account lifecycle: create, bet without funds, reconcile an external
// deposit, win a bet, withdraw everything, then hit the floor.
func TestAccountLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := newMemStore()
	wallet := new(mockWallet)
	oracle := new(mockOracle)
	svc := newTestService(store, wallet, oracle)

	// Fresh identity opens an account with zero balances.
	acct, err := svc.CreateAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, acct.Deposited)
	assert.Zero(t, acct.WinAmount)

	// Betting before any deposit fails the stake check.
	_, err = svc.PlaceBet(ctx, "alice", 5)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// 100 units arrive at the receipt address and reconcile in.
	wallet.On("BalanceAt", mock.Anything, mock.Anything).Return(int64(100), nil).Once()
	wallet.On("Transfer", mock.Anything, mock.MatchedBy(func(req chain.TransferRequest) bool {
		return req.To == testPool && req.Amount == 100
	})).Return("tx-sweep", nil).Once()

	credited, err := svc.Deposit(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), credited)

	deposited, err := svc.DepositedAmount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), deposited)

	// The oracle draws the guessed number: win.
	oracle.On("RandomBytes", mock.Anything, 1).Return([]byte{5}, nil).Once()

	result, err := svc.PlaceBet(ctx, "alice", 5)
	require.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, int64(90), result.Deposited)
	assert.Equal(t, int64(20), result.WinAmount)

	// Withdraw the whole withdrawable balance.
	wallet.On("Transfer", mock.Anything, mock.MatchedBy(func(req chain.TransferRequest) bool {
		return req.To == "alice" && req.Amount == 110 && req.Fee == testFee
	})).Return("tx-payout", nil).Once()

	receipt, err := svc.Withdraw(ctx, "alice", 110)
	require.NoError(t, err)
	assert.Equal(t, int64(110), receipt.Amount)

	rec := store.mustGet(t, "alice")
	assert.Zero(t, rec.Deposited)
	assert.Zero(t, rec.WinAmount)

	// Nothing left to withdraw.
	_, err = svc.Withdraw(ctx, "alice", 1)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	wallet.AssertExpectations(t)
	oracle.AssertExpectations(t)
}
