// Package casino is the custodial wager ledger: account creation, deposit
// reconciliation, fixed-stake bets and withdrawals over per-identity
// balances.
//
// Every mutating operation runs under the sequencer's per-identity guard and
// never writes through a balance read taken before an external call: after a
// suspension point the account is re-read before any mutation, and nothing is
// persisted until every external call it depends on has confirmed.
package casino

import (
	"errors"

	"github.com/fastprodman/wagerhouse/internal/chain"
	"github.com/fastprodman/wagerhouse/internal/config"
	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
	"github.com/fastprodman/wagerhouse/internal/rng"
	"github.com/fastprodman/wagerhouse/internal/sequencer"
)

const (
	// Stake is the fixed amount wagered per bet.
	Stake int64 = 10
	// Payout is the fixed amount credited to winnings on a won bet.
	Payout int64 = 20
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoFundsDetected   = errors.New("no incoming funds detected")
)

type Service struct {
	accounts accounts.Accounts
	wallet   chain.Wallet
	rng      *rng.Adapter
	seq      *sequencer.Sequencer
	pool     string
	fee      int64
}

func New(store accounts.Accounts, wallet chain.Wallet, oracle chain.Oracle, cfg config.CasinoConfig) *Service {
	return &Service{
		accounts: store,
		wallet:   wallet,
		rng:      rng.New(oracle),
		seq:      sequencer.New(),
		pool:     cfg.PoolAddress,
		fee:      cfg.WithdrawFee,
	}
}
