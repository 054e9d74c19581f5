// Package chain defines the boundary to the external settlement layer: the
// balance query service, the asset transfer service and the randomness
// oracle. The core trusts these contracts and nothing about what is behind
// them.
package chain

import (
	"context"
	"errors"
)

var (
	// ErrTransferFailed covers any failure of the transfer/balance service.
	ErrTransferFailed = errors.New("transfer service failure")
	// ErrOracleUnavailable covers any failure of the randomness oracle.
	ErrOracleUnavailable = errors.New("randomness oracle unavailable")
)

// TransferRequest moves funds between a custodial sub-account and an
// external address. Fee is flat and taken out of Amount during transfer.
type TransferRequest struct {
	FromIndex uint64
	To        string
	Amount    int64
	Fee       int64
	Memo      string
}

// Oracle hands out raw entropy from the external randomness source.
type Oracle interface {
	RandomBytes(ctx context.Context, n int) ([]byte, error)
}

// Wallet exposes the balance query and asset transfer services.
type Wallet interface {
	// BalanceAt reports the observed balance at an address; absence of the
	// address reports as zero, not as an error.
	BalanceAt(ctx context.Context, address string) (int64, error)
	// Transfer submits req and returns the settlement transaction id once
	// the transfer is confirmed.
	Transfer(ctx context.Context, req TransferRequest) (string, error)
}
