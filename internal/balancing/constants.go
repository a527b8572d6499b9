package balancing

// Default tuning
const (
	DefaultDailyInflationBps   = 50 // 0.5% of supply per day
	DefaultMinRewardMultiplier = "0.25"
	DefaultTargetDailyActions  = 100
	DefaultPriceElasticity     = "0.5"
	DefaultMinPriceMultiplier  = "0.5"
	DefaultMaxPriceMultiplier  = "2"
)
