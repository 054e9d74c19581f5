package accounts

import (
	"context"
	"fmt"

	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
)

// Put overwrites the record for acct.Owner, creating it if absent.
func (r *accountsRepo) Put(ctx context.Context, acct *accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, owner, deposited, win_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner) DO UPDATE
		SET deposited  = EXCLUDED.deposited,
		    win_amount = EXCLUDED.win_amount,
		    updated_at = EXCLUDED.updated_at
	`, acct.ID, acct.Owner, acct.Deposited, acct.WinAmount, acct.CreatedAt, acct.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}

	return nil
}
