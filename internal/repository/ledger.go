package repository

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LedgerStore persists fungible balances keyed by (token, account)
type LedgerStore interface {
	// GetBalance returns zero for unknown accounts
	GetBalance(ctx context.Context, token, account common.Address) (*big.Int, error)
	SetBalance(ctx context.Context, token, account common.Address, amount *big.Int) error
	GetTotalSupply(ctx context.Context, token common.Address) (*big.Int, error)
	SetTotalSupply(ctx context.Context, token common.Address, amount *big.Int) error
}
