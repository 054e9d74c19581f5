package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
)

type Status string

const (
	StatusIdle              Status = "idle"
	StatusOperationInFlight Status = "operation_in_flight"
)

// Account is the per-identity ledger record. Owner is the storage key; ID is
// informational only.
type Account struct {
	ID        uuid.UUID `db:"id"`
	Owner     string    `db:"owner"`
	Deposited int64     `db:"deposited"`
	WinAmount int64     `db:"win_amount"`
	Status    Status    `db:"-"` // live sequencer state, never persisted
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Withdrawable is the maximum the owner may withdraw.
func (a *Account) Withdrawable() int64 {
	return a.Deposited + a.WinAmount
}

// Accounts is the durable keyed store. It offers no cross-call transactions:
// a Get followed by a Put is one logical critical section per owner only
// because the sequencer serializes it, not because the store does.
type Accounts interface {
	Create(ctx context.Context, acct *Account) error
	Get(ctx context.Context, owner string) (*Account, error)
	Put(ctx context.Context, acct *Account) error
}
