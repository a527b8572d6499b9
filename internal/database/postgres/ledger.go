package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (t *stateTx) GetBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	var n pgtype.Numeric
	err := t.tx.QueryRow(ctx, `SELECT amount FROM balances WHERE token = $1 AND account = $2`,
		token.Bytes(), account.Bytes()).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "balance", err)
	}
	return bigInt(n)
}

// SetBalance upserts the balance; a zero balance deletes the row
func (t *stateTx) SetBalance(ctx context.Context, token, account common.Address, amount *big.Int) error {
	var err error
	if amount.Sign() == 0 {
		_, err = t.tx.Exec(ctx, `DELETE FROM balances WHERE token = $1 AND account = $2`, token.Bytes(), account.Bytes())
	} else {
		_, err = t.tx.Exec(ctx, `
			INSERT INTO balances (token, account, amount) VALUES ($1, $2, $3)
			ON CONFLICT (token, account) DO UPDATE SET amount = EXCLUDED.amount`,
			token.Bytes(), account.Bytes(), numeric(amount))
	}
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "balance", err)
	}
	return nil
}

func (t *stateTx) GetTotalSupply(ctx context.Context, token common.Address) (*big.Int, error) {
	var n pgtype.Numeric
	err := t.tx.QueryRow(ctx, `SELECT total FROM token_supply WHERE token = $1`, token.Bytes()).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "total supply", err)
	}
	return bigInt(n)
}

func (t *stateTx) SetTotalSupply(ctx context.Context, token common.Address, amount *big.Int) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO token_supply (token, total) VALUES ($1, $2)
		ON CONFLICT (token) DO UPDATE SET total = EXCLUDED.total`,
		token.Bytes(), numeric(amount))
	if err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, "total supply", err)
	}
	return nil
}
