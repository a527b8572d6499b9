package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/access"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/repository"
)

// Store is the subset of a state transaction the ledger needs
type Store interface {
	repository.LedgerStore
	repository.AccessStore
}

// Ledger is a fungible token bound to one token address inside a transaction
type Ledger struct {
	store Store
	token common.Address
}

// New binds a ledger for token to store
func New(store Store, token common.Address) *Ledger {
	return &Ledger{store: store, token: token}
}

// Token returns the token address this ledger operates on
func (l *Ledger) Token() common.Address {
	return l.token
}

// Mint creates amount new tokens for to. operator must hold the minter role.
func (l *Ledger) Mint(ctx context.Context, operator, to common.Address, amount *big.Int) error {
	if err := access.Require(ctx, l.store, domain.RoleMinter, operator); err != nil {
		return err
	}
	if !domain.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}

	bal, err := l.store.GetBalance(ctx, l.token, to)
	if err != nil {
		return err
	}
	supply, err := l.store.GetTotalSupply(ctx, l.token)
	if err != nil {
		return err
	}

	if err := l.store.SetBalance(ctx, l.token, to, bal.Add(bal, amount)); err != nil {
		return err
	}
	return l.store.SetTotalSupply(ctx, l.token, supply.Add(supply, amount))
}

// BurnFrom destroys amount tokens held by holder. operator must hold the burner role.
func (l *Ledger) BurnFrom(ctx context.Context, operator, holder common.Address, amount *big.Int) error {
	if err := access.Require(ctx, l.store, domain.RoleBurner, operator); err != nil {
		return err
	}
	if !domain.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}

	bal, err := l.store.GetBalance(ctx, l.token, holder)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", domain.ErrInsufficientBalance, bal, amount)
	}
	supply, err := l.store.GetTotalSupply(ctx, l.token)
	if err != nil {
		return err
	}

	if err := l.store.SetBalance(ctx, l.token, holder, bal.Sub(bal, amount)); err != nil {
		return err
	}
	return l.store.SetTotalSupply(ctx, l.token, supply.Sub(supply, amount))
}

// Transfer moves amount from one account to another
func (l *Ledger) Transfer(ctx context.Context, from, to common.Address, amount *big.Int) error {
	if !domain.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}

	fromBal, err := l.store.GetBalance(ctx, l.token, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", domain.ErrInsufficientBalance, fromBal, amount)
	}
	if from == to {
		return nil
	}
	toBal, err := l.store.GetBalance(ctx, l.token, to)
	if err != nil {
		return err
	}

	if err := l.store.SetBalance(ctx, l.token, from, fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	return l.store.SetBalance(ctx, l.token, to, toBal.Add(toBal, amount))
}

// BalanceOf returns the balance of account
func (l *Ledger) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return l.store.GetBalance(ctx, l.token, account)
}

// TotalSupply returns the outstanding supply
func (l *Ledger) TotalSupply(ctx context.Context) (*big.Int, error) {
	return l.store.GetTotalSupply(ctx, l.token)
}
