package domain

import (
	"math/big"
	"time"
)

// Token precision
const (
	// TokenDecimals is the number of decimal places of every fungible token
	TokenDecimals = 18

	// SecondsPerDay is the width of a daily bucket
	SecondsPerDay = 86400
)

// precision is 10^TokenDecimals, shared read-only
var precision = new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)

// Precision returns a fresh copy of 10^18, the fixed-point scale used for
// token amounts and reward accumulators.
func Precision() *big.Int {
	return new(big.Int).Set(precision)
}

// Tokens converts a whole-token amount into base units.
func Tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), precision)
}

// WholeTokens truncates a base-unit amount to whole tokens.
func WholeTokens(amount *big.Int) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Quo(amount, precision)
}

// DayBucket returns the daily bucket for a timestamp: unix seconds / 86400.
func DayBucket(t time.Time) int64 {
	return t.Unix() / SecondsPerDay
}

// CloneInt returns a deep copy of x, treating nil as zero.
func CloneInt(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}

// IsPositive reports whether x is non-nil and greater than zero.
func IsPositive(x *big.Int) bool {
	return x != nil && x.Sign() > 0
}
