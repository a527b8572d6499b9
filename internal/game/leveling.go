package game

import (
	"math"
	"math/big"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// CalculateLevel derives a level from cumulative experience.
// Starting at level 1 with threshold 100, the level increments and the
// threshold becomes level² × 100 while experience ≥ threshold, capped at
// domain.MaxLevel. Reaching a threshold exactly counts.
func CalculateLevel(experience int64) int {
	level := domain.MinLevel
	threshold := int64(BaseLevelThreshold)
	for experience >= threshold && level < domain.MaxLevel {
		level++
		threshold = int64(level) * int64(level) * LevelThresholdFactor
	}
	return level
}

// NextLevelThreshold returns the experience at which a player at level
// advances, or 0 at the cap.
func NextLevelThreshold(level int) int64 {
	if level >= domain.MaxLevel {
		return 0
	}
	if level < domain.MinLevel {
		level = domain.MinLevel
	}
	return int64(level) * int64(level) * LevelThresholdFactor
}

// applyExperience adds xp and returns the new level, which never decreases
func applyExperience(p *domain.Player, xp int64) (oldLevel, newLevel int) {
	oldLevel = p.Level
	if xp > math.MaxInt64-p.Experience {
		p.Experience = math.MaxInt64
	} else {
		p.Experience += xp
	}
	if lvl := CalculateLevel(p.Experience); lvl > p.Level {
		p.Level = lvl
	}
	return oldLevel, p.Level
}

// rewardExperience treats a base-unit reward as whole tokens of experience
func rewardExperience(reward *big.Int) int64 {
	w := domain.WholeTokens(reward)
	if !w.IsInt64() {
		return math.MaxInt64
	}
	return w.Int64()
}
