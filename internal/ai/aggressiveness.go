package ai

import (
	"math/rand"

	"github.com/openhearts/hearts-engine-go/internal/config"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// Aggressiveness is the hard AI's risk profile: a base scalar fixed for the
// instance's lifetime plus a live adjustment from relative score standing.
// In Hearts a higher score means losing, so trailing players get pushed
// toward riskier lines.
type Aggressiveness struct {
	base float64
	cfg  config.AggressivenessConfig
}

// NewAggressiveness draws the base uniformly from the configured range.
func NewAggressiveness(cfg config.AggressivenessConfig, rng *rand.Rand) *Aggressiveness {
	return &Aggressiveness{
		base: cfg.BaseMin + rng.Float64()*(cfg.BaseMax-cfg.BaseMin),
		cfg:  cfg,
	}
}

// Base returns the fixed per-instance base.
func (a *Aggressiveness) Base() float64 {
	return a.base
}

// ScoreAdjustment computes the live shift for a seat: (own score minus
// average opponent score) over the configured divisor, clamped.
func (a *Aggressiveness) ScoreAdjustment(scores []int, seat int) float64 {
	if len(scores) < 2 {
		return 0
	}
	opponentTotal := 0
	for i, s := range scores {
		if i != seat {
			opponentTotal += s
		}
	}
	avgOpponent := float64(opponentTotal) / float64(len(scores)-1)
	adjustment := (float64(scores[seat]) - avgOpponent) / a.cfg.ScoreDivisor
	return clamp(adjustment, -a.cfg.AdjustmentClamp, a.cfg.AdjustmentClamp)
}

// Effective returns the decision-time aggressiveness in [0, 1]. It is
// recomputed from current scores on every call, never cached.
func (a *Aggressiveness) Effective(scores []int, seat int) float64 {
	return clamp(a.base+a.ScoreAdjustment(scores, seat), 0, 1)
}

// Modifiers are the concrete knobs the hard AI's scoring applies, all
// derived linearly from the effective aggressiveness.
type Modifiers struct {
	// MoonSuspicionThreshold is how much suspicion it takes before the AI
	// starts denying a suspected moon shooter. Aggressive instances act on
	// weaker evidence.
	MoonSuspicionThreshold float64
	// DuckPreference scales the bonus for ducking; cautious instances duck
	// harder.
	DuckPreference float64
	// RiskTolerance scales penalties for taking pointed tricks down as
	// aggressiveness rises.
	RiskTolerance float64
	// HighCardDumpBonus rewards shedding dangerous high cards while void.
	HighCardDumpBonus float64
	// BluffProbability gates a deliberate sub-optimal pick.
	BluffProbability float64
	// LeaderTargetGap is the score lead an opponent needs before the AI
	// starts feeding them points.
	LeaderTargetGap float64
	// LeaderTargetWeight is the dump bonus for targeting the leader. It
	// decays linearly to zero across the round's thirteen tricks.
	LeaderTargetWeight float64
}

// ModifiersFor derives the modifier set for one decision.
func (a *Aggressiveness) ModifiersFor(effective float64, trickNumber int) Modifiers {
	cfg := a.cfg
	lateDecay := 1 - float64(trickNumber-1)/float64(card.HandSize)
	if lateDecay < 0 {
		lateDecay = 0
	}
	return Modifiers{
		MoonSuspicionThreshold: lerp(cfg.MoonThresholdMax, cfg.MoonThresholdMin, effective) * 10,
		DuckPreference:         lerp(cfg.DuckPreferenceMax, cfg.DuckPreferenceMin, effective),
		RiskTolerance:          lerp(cfg.RiskToleranceMin, cfg.RiskToleranceMax, effective),
		HighCardDumpBonus:      effective * cfg.HighCardDumpMax,
		BluffProbability:       lerp(cfg.BluffMin, cfg.BluffMax, effective),
		LeaderTargetGap:        lerp(cfg.LeaderTargetGapMax, cfg.LeaderTargetGapMin, effective),
		LeaderTargetWeight:     lerp(cfg.LeaderTargetWeightMin, cfg.LeaderTargetWeightMax, effective) * lateDecay,
	}
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
