package casino

import (
	"context"
	"fmt"
	"time"

	"github.com/fastprodman/wagerhouse/internal/chain"
)

// WithdrawalReceipt confirms a completed withdrawal.
type WithdrawalReceipt struct {
	Amount int64
	TxID   string
	At     time.Time
}

// Withdraw pays amount out of the pool to the owner's external address.
// The flat network fee comes out of the transferred amount. Balances are
// debited only after the transfer confirms: a failed transfer must never
// leave a phantom debit behind.
func (s *Service) Withdraw(ctx context.Context, owner string, amount int64) (*WithdrawalReceipt, error) {
	err := s.seq.Acquire(owner)
	if err != nil {
		return nil, fmt.Errorf("sequence withdraw: %w", err)
	}
	defer s.seq.Release(owner)

	acct, err := s.accounts.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if amount > acct.Withdrawable() {
		return nil, ErrInsufficientFunds
	}

	// Suspension point. No debit has happened; a failure here is clean.
	txID, err := s.wallet.Transfer(ctx, chain.TransferRequest{
		FromIndex: chain.PoolIndex,
		To:        owner,
		Amount:    amount,
		Fee:       s.fee,
		Memo:      "withdraw:" + owner,
	})
	if err != nil {
		return nil, fmt.Errorf("payout transfer: %w", err)
	}

	acct, err = s.accounts.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("reload account: %w", err)
	}

	// Debit deposited first, then winnings; both are fungible at this point.
	fromDeposited := min(amount, acct.Deposited)
	acct.Deposited -= fromDeposited
	acct.WinAmount -= amount - fromDeposited
	acct.UpdatedAt = time.Now().UTC()

	err = s.accounts.Put(ctx, acct)
	if err != nil {
		return nil, fmt.Errorf("persist account: %w", err)
	}

	return &WithdrawalReceipt{Amount: amount, TxID: txID, At: acct.UpdatedAt}, nil
}
