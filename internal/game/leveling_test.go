package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name string
		xp   int64
		want int
	}{
		{"zero", 0, 1},
		{"just below first threshold", 99, 1},
		{"first threshold inclusive", 100, 2},
		{"below level 3", 399, 2},
		{"level 3 inclusive", 400, 3},
		{"level 4", 900, 4},
		{"level 10", 10_000, 11},
		{"just below cap", 99*99*100 - 1, 99},
		{"cap", 99 * 99 * 100, 100},
		{"far beyond cap", 1 << 40, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLevel(tt.xp))
		})
	}
}

func TestCalculateLevel_Monotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for xp := int64(0); xp <= 1_000_000; xp += 37 {
		lvl := CalculateLevel(xp)
		assert.GreaterOrEqual(t, lvl, prev, "xp %d", xp)
		assert.LessOrEqual(t, lvl, domain.MaxLevel)
		prev = lvl
	}
}

func TestNextLevelThreshold(t *testing.T) {
	assert.Equal(t, int64(100), NextLevelThreshold(1))
	assert.Equal(t, int64(400), NextLevelThreshold(2))
	assert.Equal(t, int64(0), NextLevelThreshold(domain.MaxLevel))

	// Reaching the advertised threshold always advances exactly one level
	for lvl := 1; lvl < domain.MaxLevel; lvl++ {
		th := NextLevelThreshold(lvl)
		assert.Equal(t, lvl, CalculateLevel(th-1), "level %d", lvl)
		assert.Equal(t, lvl+1, CalculateLevel(th), "level %d", lvl)
	}
}

func TestApplyExperience_NeverLowersLevel(t *testing.T) {
	p := &domain.Player{Level: 5, Experience: 0}
	old, lvl := applyExperience(p, 10)
	assert.Equal(t, 5, old)
	assert.Equal(t, 5, lvl)
	assert.Equal(t, int64(10), p.Experience)

	old, lvl = applyExperience(p, 3590)
	assert.Equal(t, 5, old)
	assert.Equal(t, 7, lvl)
}

func BenchmarkCalculateLevel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CalculateLevel(int64(i) * 1000)
	}
}
