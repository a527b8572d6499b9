package domain

import "math/big"

// DailyMetrics are the per-day economy counters reported after each commit
type DailyMetrics struct {
	Day     int64    `json:"day"`
	Minted  *big.Int `json:"minted"`  // utility base units minted as rewards
	Actions int64    `json:"actions"` // priced actions (craft, repair)
}

// NewDailyMetrics returns zeroed metrics for day
func NewDailyMetrics(day int64) *DailyMetrics {
	return &DailyMetrics{Day: day, Minted: new(big.Int)}
}

// Clone returns a deep copy
func (m DailyMetrics) Clone() *DailyMetrics {
	m.Minted = CloneInt(m.Minted)
	return &m
}
