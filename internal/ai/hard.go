package ai

import (
	"math/rand"
	"sort"
	"time"

	"github.com/openhearts/hearts-engine-go/internal/config"
	"github.com/openhearts/hearts-engine-go/internal/game"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// HardStrategy is the top tier: the medium tier's weighted scoring plus a
// bounded memory of recent tricks and a per-instance aggressiveness profile
// that shifts the weights with the score standing. One long-lived instance
// exists per AI player for the game's lifetime.
type HardStrategy struct {
	playerID string
	seat     int
	seats    map[string]int
	memory   *CardMemory
	aggro    *Aggressiveness
	weights  config.WeightsConfig
	rng      *rand.Rand
}

// NewHardStrategy creates a hard-tier instance for one seat. seats maps
// every player ID at the table to its seat index; it is fixed for the game.
// A nil rng becomes a time-seeded source.
func NewHardStrategy(playerID string, seats map[string]int, cfg config.AIConfig, rng *rand.Rand) *HardStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HardStrategy{
		playerID: playerID,
		seat:     seats[playerID],
		seats:    copySeats(seats),
		memory:   NewCardMemory(cfg.MemoryWindow),
		aggro:    NewAggressiveness(cfg.Aggressiveness, rng),
		weights:  cfg.Weights,
		rng:      rng,
	}
}

func copySeats(seats map[string]int) map[string]int {
	out := make(map[string]int, len(seats))
	for id, seat := range seats {
		out[id] = seat
	}
	return out
}

// Memory exposes the card memory for inspection.
func (h *HardStrategy) Memory() *CardMemory {
	return h.memory
}

// Aggressiveness exposes the risk profile for inspection.
func (h *HardStrategy) Aggressiveness() *Aggressiveness {
	return h.aggro
}

// OnTrickComplete feeds a finished trick into the card memory.
func (h *HardStrategy) OnTrickComplete(trick rules.Trick, winnerIndex, trickNumber int) {
	h.memory.RecordTrick(trick, h.seatOf, winnerIndex, trickNumber)
}

// OnRoundStart wipes the round-scoped memory. The aggressiveness base
// persists for the whole game.
func (h *HardStrategy) OnRoundStart() {
	h.memory.Reset()
}

func (h *HardStrategy) seatOf(playerID string) int {
	if seat, ok := h.seats[playerID]; ok {
		return seat
	}
	return -1
}

// ChooseCardsToPass scores the hand with the pass table. An aggressive
// instance holding a control-heavy hand inverts the table and keeps its
// high cards for a moon attempt, shipping junk instead.
func (h *HardStrategy) ChooseCardsToPass(ctx PassContext) []card.Card {
	effective := h.aggro.Effective(ctx.Scores, h.seat)
	if effective >= 0.7 && moonCapableHand(ctx.Hand) {
		return lowestCards(ctx.Hand, game.PassCount)
	}

	type scored struct {
		card  card.Card
		score float64
	}
	candidates := make([]scored, len(ctx.Hand))
	for i, c := range ctx.Hand {
		candidates[i] = scored{card: c, score: scorePassCandidate(c, ctx.Hand, h.weights.Pass)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	picks := make([]card.Card, game.PassCount)
	for i := 0; i < game.PassCount; i++ {
		picks[i] = candidates[i].card
	}
	return picks
}

// ChooseCardToPlay scores every legal candidate with the weight tables,
// shifted by memory-derived knowledge and the decision-time aggressiveness
// modifiers. A bluff draw may deliberately take the runner-up instead.
func (h *HardStrategy) ChooseCardToPlay(ctx PlayContext) card.Card {
	effective := h.aggro.Effective(ctx.Scores, h.seat)
	mods := h.aggro.ModifiersFor(effective, ctx.TrickNumber)

	best, runnerUp := -1, -1
	var bestScore, runnerUpScore float64
	for i, c := range ctx.ValidCards {
		score := h.scorePlay(c, ctx, mods)
		switch {
		case best < 0 || score > bestScore:
			runnerUp, runnerUpScore = best, bestScore
			best, bestScore = i, score
		case runnerUp < 0 || score > runnerUpScore:
			runnerUp, runnerUpScore = i, score
		}
	}

	if runnerUp >= 0 && h.rng.Float64() < mods.BluffProbability {
		return ctx.ValidCards[runnerUp]
	}
	return ctx.ValidCards[best]
}

func (h *HardStrategy) scorePlay(c card.Card, ctx PlayContext, mods Modifiers) float64 {
	if ctx.IsLeading() {
		return h.scoreLead(c, ctx, mods)
	}
	leadSuit, _ := ctx.LeadSuit()
	if c.Suit == leadSuit {
		return h.scoreFollow(c, ctx, mods)
	}
	return h.scoreDump(c, ctx, mods)
}

func (h *HardStrategy) scoreLead(c card.Card, ctx PlayContext, mods Modifiers) float64 {
	score := scoreLead(c, ctx, h.weights.Lead, func(suit card.Suit) bool {
		for _, seat := range h.seats {
			if seat != h.seat && h.memory.IsVoid(seat, suit) {
				return true
			}
		}
		return false
	})

	// The exposed-spade penalty exists to dodge an unseen queen; once the
	// window remembers her falling it no longer applies.
	if h.memory.IsQueenOfSpadesPlayed() {
		if c.Suit == card.Spades && c.Rank > card.Queen && !card.Contains(ctx.Hand, card.QueenOfSpades) {
			score -= h.weights.Lead.QueenExposedLead
		}
		if c.Suit == card.Spades && c.Rank < card.Queen {
			score -= h.weights.Lead.QueenHunterLead
		}
	}

	// Leading a suit where high cards remain unseen is risky in proportion
	// to risk tolerance.
	if c.Rank >= card.Queen && len(h.memory.GetUnseenHighCards(c.Suit, c.Rank+1)) == 0 {
		// Nothing unseen can beat it; certain win, which only an
		// aggressive instance wants while points loom.
		score -= 10 / mods.RiskTolerance
	}
	return score
}

func (h *HardStrategy) scoreFollow(c card.Card, ctx PlayContext, mods Modifiers) float64 {
	score := scoreFollow(c, ctx, h.weights.Follow, mods.DuckPreference)

	if wouldWinTrick(c, ctx.Trick) {
		trickPoints := ctx.Trick.TotalPoints()
		if trickPoints > 0 {
			// Risk tolerance softens the penalty for taking points.
			softened := h.weights.Follow.WinPenaltyPerPoint * float64(trickPoints)
			score += softened/mods.RiskTolerance - softened

			// Denying a suspected moon shooter a pointed trick is worth
			// taking it ourselves.
			if winner := h.currentWinnerSeat(ctx.Trick); winner >= 0 &&
				h.memory.MoonSuspicion(winner) >= mods.MoonSuspicionThreshold {
				score += 25
			}
		}
	}
	return score
}

func (h *HardStrategy) scoreDump(c card.Card, ctx PlayContext, mods Modifiers) float64 {
	score := scoreDump(c, ctx, h.weights.Dump)

	if !c.IsPenalty() && c.Rank >= card.Queen {
		score += mods.HighCardDumpBonus
	}

	winner := h.currentWinnerSeat(ctx.Trick)
	if winner < 0 || !c.IsPenalty() {
		return score
	}

	// Feeding points to a suspected moon shooter builds their run; feeding
	// the player ahead of the table is targeting.
	if h.memory.MoonSuspicion(winner) >= mods.MoonSuspicionThreshold {
		score += h.weights.Dump.MoonShooterFeed
	} else if h.isRunawayLeader(winner, ctx.Scores, mods.LeaderTargetGap) {
		score += h.weights.Dump.LeaderTarget + mods.LeaderTargetWeight
	}
	return score
}

// currentWinnerSeat returns the seat currently winning the trick, or -1 for
// an empty trick.
func (h *HardStrategy) currentWinnerSeat(trick rules.Trick) int {
	slot := rules.TrickWinner(trick)
	if slot < 0 {
		return -1
	}
	return h.seatOf(trick[slot].PlayerID)
}

// isRunawayLeader reports whether the seat leads the game by at least the
// targeting gap. Leading means the lowest cumulative score.
func (h *HardStrategy) isRunawayLeader(seat int, scores []int, gap float64) bool {
	if seat < 0 || seat >= len(scores) {
		return false
	}
	leader := 0
	for i, s := range scores {
		if s < scores[leader] {
			leader = i
		}
	}
	if leader != seat {
		return false
	}
	secondBest := -1
	for i, s := range scores {
		if i != leader && (secondBest < 0 || s < secondBest) {
			secondBest = s
		}
	}
	return float64(secondBest-scores[leader]) >= gap
}

// moonCapableHand checks for the control cards a moon run needs: plenty of
// high hearts and top cards elsewhere.
func moonCapableHand(hand []card.Card) bool {
	highHearts, topCards := 0, 0
	for _, c := range hand {
		if c.Suit == card.Hearts && c.Rank >= card.Ten {
			highHearts++
		}
		if c.Rank >= card.Queen {
			topCards++
		}
	}
	return highHearts >= 3 && topCards >= 6
}

func lowestCards(hand []card.Card, n int) []card.Card {
	byRank := append([]card.Card(nil), hand...)
	sort.SliceStable(byRank, func(i, j int) bool {
		return byRank[i].Rank < byRank[j].Rank
	})
	return byRank[:n]
}
