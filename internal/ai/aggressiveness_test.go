package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhearts/hearts-engine-go/internal/config"
)

func aggroConfig() config.AggressivenessConfig {
	return config.Default().AI.Aggressiveness
}

func TestAggressiveness_BaseRange(t *testing.T) {
	cfg := aggroConfig()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := NewAggressiveness(cfg, rng)
		assert.GreaterOrEqual(t, a.Base(), cfg.BaseMin)
		assert.LessOrEqual(t, a.Base(), cfg.BaseMax)
	}
}

func TestAggressiveness_ScoreAdjustment(t *testing.T) {
	a := NewAggressiveness(aggroConfig(), rand.New(rand.NewSource(2)))

	// Even standing: no shift.
	assert.InDelta(t, 0, a.ScoreAdjustment([]int{20, 20, 20, 20}, 0), 1e-9)

	// Losing badly (high score) pushes aggressiveness up, clamped at +0.3.
	assert.InDelta(t, 0.3, a.ScoreAdjustment([]int{90, 10, 10, 10}, 0), 1e-9)

	// Winning (low score) pulls it down, clamped at -0.3.
	assert.InDelta(t, -0.3, a.ScoreAdjustment([]int{0, 80, 80, 80}, 0), 1e-9)

	// Inside the clamp the shift is (mine - avg) / 60.
	assert.InDelta(t, 12.0/60.0, a.ScoreAdjustment([]int{24, 12, 12, 12}, 0), 1e-9)
}

func TestAggressiveness_EffectiveBounds(t *testing.T) {
	a := NewAggressiveness(aggroConfig(), rand.New(rand.NewSource(3)))
	for _, scores := range [][]int{
		{0, 0, 0, 0},
		{95, 0, 0, 0},
		{0, 95, 95, 95},
	} {
		eff := a.Effective(scores, 0)
		assert.GreaterOrEqual(t, eff, 0.0)
		assert.LessOrEqual(t, eff, 1.0)
	}
}

func TestAggressiveness_ModifiersScale(t *testing.T) {
	a := NewAggressiveness(aggroConfig(), rand.New(rand.NewSource(4)))

	timid := a.ModifiersFor(0.1, 1)
	bold := a.ModifiersFor(0.9, 1)

	assert.Greater(t, timid.DuckPreference, bold.DuckPreference)
	assert.Less(t, timid.RiskTolerance, bold.RiskTolerance)
	assert.Less(t, timid.HighCardDumpBonus, bold.HighCardDumpBonus)
	assert.Less(t, timid.BluffProbability, bold.BluffProbability)
	assert.Greater(t, timid.LeaderTargetGap, bold.LeaderTargetGap)
	assert.Greater(t, timid.MoonSuspicionThreshold, bold.MoonSuspicionThreshold)
}

func TestAggressiveness_LeaderTargetingDecays(t *testing.T) {
	a := NewAggressiveness(aggroConfig(), rand.New(rand.NewSource(5)))

	early := a.ModifiersFor(0.5, 1)
	late := a.ModifiersFor(0.5, 12)
	assert.Greater(t, early.LeaderTargetWeight, late.LeaderTargetWeight)

	final := a.ModifiersFor(0.5, 14)
	assert.Equal(t, 0.0, final.LeaderTargetWeight)
}
