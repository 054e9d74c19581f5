package casino

import (
	"context"
	"fmt"
	"time"

	"github.com/fastprodman/wagerhouse/internal/chain"
)

// Deposit reconciles externally received funds for owner: it queries the
// balance at the owner's receipt address, sweeps it into the pool and only
// then credits the account. Returns the credited amount.
//
// The credit replaces the deposited balance with the observed total rather
// than adding to it: the gateway reports the cumulative unswept balance at
// the receipt address, so replace-with-observed is the double-count-safe
// interpretation.
func (s *Service) Deposit(ctx context.Context, owner string) (int64, error) {
	err := s.seq.Acquire(owner)
	if err != nil {
		return 0, fmt.Errorf("sequence deposit: %w", err)
	}
	defer s.seq.Release(owner)

	_, err = s.accounts.Get(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("get account: %w", err)
	}

	index := chain.SubIndex(owner)
	receipt := chain.ReceiptAddress(s.pool, index)

	// Suspension point.
	observed, err := s.wallet.BalanceAt(ctx, receipt)
	if err != nil {
		return 0, fmt.Errorf("query receipt balance: %w", err)
	}

	if observed <= 0 {
		return 0, ErrNoFundsDetected
	}

	// Sweep before crediting. A credit persisted ahead of a confirmed sweep
	// would count funds that never left the user-controlled sub-address.
	_, err = s.wallet.Transfer(ctx, chain.TransferRequest{
		FromIndex: index,
		To:        s.pool,
		Amount:    observed,
		Memo:      "sweep:" + owner,
	})
	if err != nil {
		return 0, fmt.Errorf("sweep deposit: %w", err)
	}

	// Fresh read after the suspension points; never write a stale snapshot.
	acct, err := s.accounts.Get(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("reload account: %w", err)
	}

	acct.Deposited = observed
	acct.UpdatedAt = time.Now().UTC()

	err = s.accounts.Put(ctx, acct)
	if err != nil {
		return 0, fmt.Errorf("persist account: %w", err)
	}

	return observed, nil
}
