package casino

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fastprodman/wagerhouse/internal/chain"
	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
)

// CreateAccount opens the single account for owner with zero balances.
// A second call for the same owner returns accounts.ErrAccountExists and
// leaves the first record untouched.
func (s *Service) CreateAccount(ctx context.Context, owner string) (*accounts.Account, error) {
	err := s.seq.Acquire(owner)
	if err != nil {
		return nil, fmt.Errorf("sequence create: %w", err)
	}
	defer s.seq.Release(owner)

	now := time.Now().UTC()

	acct := &accounts.Account{
		ID:        uuid.New(),
		Owner:     owner,
		Status:    accounts.StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.accounts.Create(ctx, acct)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return acct, nil
}

// DepositedAmount returns the reconciled deposit balance for owner.
func (s *Service) DepositedAmount(ctx context.Context, owner string) (int64, error) {
	acct, err := s.lookup(ctx, owner)
	if err != nil {
		return 0, err
	}

	return acct.Deposited, nil
}

// WinAmount returns the accumulated winnings balance for owner.
func (s *Service) WinAmount(ctx context.Context, owner string) (int64, error) {
	acct, err := s.lookup(ctx, owner)
	if err != nil {
		return 0, err
	}

	return acct.WinAmount, nil
}

// DepositAddress returns the receipt address owner must send funds to.
// The address is a stable derivation, so repeated calls agree.
func (s *Service) DepositAddress(ctx context.Context, owner string) (string, error) {
	_, err := s.lookup(ctx, owner)
	if err != nil {
		return "", err
	}

	return chain.ReceiptAddress(s.pool, chain.SubIndex(owner)), nil
}

// lookup reads the account and stamps it with the live sequencer state.
// Reads do not take the guard; they observe only post-operation states
// because mutations persist atomically via a single Put.
func (s *Service) lookup(ctx context.Context, owner string) (*accounts.Account, error) {
	acct, err := s.accounts.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	acct.Status = accounts.StatusIdle
	if s.seq.InFlight(owner) {
		acct.Status = accounts.StatusOperationInFlight
	}

	return acct, nil
}
