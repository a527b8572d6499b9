package postgres

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgtype"
)

func numeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		v = new(big.Int)
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Valid: true}
}

// bigInt converts an integral NUMERIC into a big.Int. NULL reads as zero.
func bigInt(n pgtype.Numeric) (*big.Int, error) {
	if !n.Valid || n.Int == nil {
		return new(big.Int), nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil, errors.New(ErrMsgNonFiniteNumeric)
	}
	v := new(big.Int).Set(n.Int)
	switch {
	case n.Exp > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	case n.Exp < 0:
		q, r := new(big.Int).QuoRem(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil), new(big.Int))
		if r.Sign() != 0 {
			return nil, fmt.Errorf(ErrMsgFractionalNumeric, n.Int, n.Exp)
		}
		v = q
	}
	return v, nil
}

// bigInts converts several numerics, stopping at the first error
func bigInts(dst []**big.Int, src ...pgtype.Numeric) error {
	for i, n := range src {
		v, err := bigInt(n)
		if err != nil {
			return err
		}
		*dst[i] = v
	}
	return nil
}

func address(b []byte) common.Address {
	return common.BytesToAddress(b)
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
