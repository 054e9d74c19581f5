// Package rng normalizes oracle entropy to the bounded draw used by bets.
package rng

import (
	"context"
	"fmt"

	"github.com/fastprodman/wagerhouse/internal/chain"
)

// Sides is the range of a draw: values fall in [0, Sides).
const Sides = 20

type Adapter struct {
	oracle chain.Oracle
}

func New(oracle chain.Oracle) *Adapter {
	return &Adapter{oracle: oracle}
}

// Draw fetches one byte from the oracle and reduces it modulo Sides.
// The oracle is invoked exactly once per call; a failure surfaces as
// chain.ErrOracleUnavailable and touches no other state.
func (a *Adapter) Draw(ctx context.Context) (int, error) {
	raw, err := a.oracle.RandomBytes(ctx, 1)
	if err != nil {
		return 0, fmt.Errorf("draw: %w", err)
	}

	if len(raw) == 0 {
		return 0, fmt.Errorf("draw: %w: empty payload", chain.ErrOracleUnavailable)
	}

	return int(raw[0]) % Sides, nil
}
