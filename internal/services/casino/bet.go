package casino

import (
	"context"
	"fmt"
	"time"
)

// BetResult is the settled outcome of one bet.
type BetResult struct {
	Won       bool
	Draw      int
	Guess     int
	Deposited int64
	WinAmount int64
}

// PlaceBet wagers the fixed stake on guess matching the oracle draw.
// On a win the stake leaves deposited and the payout lands in winnings; on a
// loss only the stake leaves. A failed draw changes no balance.
func (s *Service) PlaceBet(ctx context.Context, owner string, guess int) (*BetResult, error) {
	err := s.seq.Acquire(owner)
	if err != nil {
		return nil, fmt.Errorf("sequence bet: %w", err)
	}
	defer s.seq.Release(owner)

	acct, err := s.accounts.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if acct.Deposited < Stake {
		return nil, ErrInsufficientFunds
	}

	// Suspension point. Nothing has been debited yet, so a failed draw
	// leaves the account exactly as found.
	draw, err := s.rng.Draw(ctx)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}

	// Fresh read after the suspension point; re-check the stake against it.
	acct, err = s.accounts.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("reload account: %w", err)
	}

	if acct.Deposited < Stake {
		return nil, ErrInsufficientFunds
	}

	won := draw == guess

	acct.Deposited -= Stake
	if won {
		acct.WinAmount += Payout
	}

	acct.UpdatedAt = time.Now().UTC()

	err = s.accounts.Put(ctx, acct)
	if err != nil {
		return nil, fmt.Errorf("persist account: %w", err)
	}

	return &BetResult{
		Won:       won,
		Draw:      draw,
		Guess:     guess,
		Deposited: acct.Deposited,
		WinAmount: acct.WinAmount,
	}, nil
}
