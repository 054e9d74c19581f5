package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
)

func (r *accountsRepo) Get(ctx context.Context, owner string) (*accounts.Account, error) {
	acct := &accounts.Account{Status: accounts.StatusIdle}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner, deposited, win_amount, created_at, updated_at
		FROM accounts
		WHERE owner = $1
	`, owner).Scan(
		&acct.ID,
		&acct.Owner,
		&acct.Deposited,
		&acct.WinAmount,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrAccountNotFound
		}

		return nil, fmt.Errorf("get account: %w", err)
	}

	return acct, nil
}
