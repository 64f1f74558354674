package ai

import (
	"sort"

	"github.com/openhearts/hearts-engine-go/internal/config"
	"github.com/openhearts/hearts-engine-go/internal/game"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// MediumStrategy scores each legal candidate with fixed situational weight
// tables: avoid leading unbroken hearts, duck tricks that carry points, dump
// penalty cards when void in the led suit. It holds no state across tricks.
type MediumStrategy struct {
	weights config.WeightsConfig
}

// NewMediumStrategy creates a medium-tier strategy over a weight table.
func NewMediumStrategy(weights config.WeightsConfig) *MediumStrategy {
	return &MediumStrategy{weights: weights}
}

// ChooseCardsToPass scores every card with the pass table and hands off the
// three highest scorers.
func (m *MediumStrategy) ChooseCardsToPass(ctx PassContext) []card.Card {
	type scored struct {
		card  card.Card
		score float64
	}
	candidates := make([]scored, len(ctx.Hand))
	for i, c := range ctx.Hand {
		candidates[i] = scored{card: c, score: scorePassCandidate(c, ctx.Hand, m.weights.Pass)}
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

// ChooseCardToPlay scores the legal set for the current situation and takes
// the top scorer, first-encountered order breaking ties.
func (m *MediumStrategy) ChooseCardToPlay(ctx PlayContext) card.Card {
	best := ctx.ValidCards[0]
	bestScore := m.scorePlay(best, ctx)
	for _, c := range ctx.ValidCards[1:] {
		if score := m.scorePlay(c, ctx); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func (m *MediumStrategy) scorePlay(c card.Card, ctx PlayContext) float64 {
	if ctx.IsLeading() {
		return scoreLead(c, ctx, m.weights.Lead, nil)
	}
	leadSuit, _ := ctx.LeadSuit()
	if c.Suit == leadSuit {
		return scoreFollow(c, ctx, m.weights.Follow, 1.0)
	}
	return scoreDump(c, ctx, m.weights.Dump)
}

// scorePassCandidate applies the pass weight table to one card in the
// context of the whole hand.
func scorePassCandidate(c card.Card, hand []card.Card, w config.PassWeights) float64 {
	score := 0.0
	switch {
	case c == card.QueenOfSpades:
		score += w.QueenOfSpades
		if spadesBelow(hand, card.Queen) >= 3 {
			score += w.ProtectedQueenKeep
		}
	case c.Suit == card.Spades && c.Rank > card.Queen:
		score += w.AceOrKingOfSpades
	}
	if c.Rank > card.Ten {
		score += w.HighCardPerRank * float64(c.Rank-card.Ten)
	}
	if c.Suit == card.Hearts {
		score += w.HeartPerRank * float64(c.Rank)
	}
	if suitCount(hand, c.Suit) <= 2 {
		score += w.ShortSuitBonus
	}
	return score
}

// scoreLead applies the lead table. voidInfo is nil for strategies without
// opponent memory; otherwise it reports whether some opponent is void in a
// suit.
func scoreLead(c card.Card, ctx PlayContext, w config.LeadWeights, voidInfo func(card.Suit) bool) float64 {
	score := w.Base
	score += w.LowRankBonus * float64(card.Ace-c.Rank)
	holdsQueen := card.Contains(ctx.Hand, card.QueenOfSpades)

	if c.Suit == card.Hearts {
		score += w.HeartLead
	}
	if c.Suit == card.Spades && !holdsQueen {
		if c.Rank < card.Queen {
			score += w.QueenHunterLead
		} else {
			score += w.QueenExposedLead
		}
	}
	if voidInfo != nil && voidInfo(c.Suit) {
		score += w.OpponentVoidLead
	}
	return score
}

// scoreFollow applies the follow table. duckPreference scales the ducking
// bonus; the medium tier uses 1.0.
func scoreFollow(c card.Card, ctx PlayContext, w config.FollowWeights, duckPreference float64) float64 {
	score := w.Base
	trickPoints := ctx.Trick.TotalPoints()
	wins := wouldWinTrick(c, ctx.Trick)

	if !wins {
		// The highest card that still loses sheds the most risk.
		score += w.DuckBonus*duckPreference + float64(c.Rank)
		return score
	}

	score += w.WinPenaltyPerPoint * float64(trickPoints)
	if c == card.QueenOfSpades {
		score += w.WinPenaltyPerPoint * float64(card.QueenOfSpades.Points())
	}
	if trickPoints == 0 {
		if ctx.IsLastSeat() {
			score += w.LastSeatCleanWin
		}
		if ctx.TrickNumber >= 10 {
			score += w.CleanWinLate + float64(c.Rank)
		}
	}
	return score
}

// scoreDump applies the dump table for a player void in the lead suit.
func scoreDump(c card.Card, ctx PlayContext, w config.DumpWeights) float64 {
	score := w.Base
	if c == card.QueenOfSpades {
		score += w.QueenOfSpades
	}
	if c.Suit == card.Hearts {
		score += w.HeartBase + w.HeartPerRank*float64(c.Rank)
	}
	if !c.IsPenalty() && c.Rank > card.Ten {
		score += w.HighCardRelief * float64(c.Rank-card.Ten)
	}
	return score
}

// wouldWinTrick reports whether playing c now would take the trick as it
// stands.
func wouldWinTrick(c card.Card, trick rules.Trick) bool {
	if len(trick) == 0 {
		return true
	}
	leadSuit := trick[0].Card.Suit
	if c.Suit != leadSuit {
		return false
	}
	winner := rules.TrickWinner(trick)
	return c.Rank > trick[winner].Card.Rank
}

func spadesBelow(hand []card.Card, rank card.Rank) int {
	count := 0
	for _, c := range hand {
		if c.Suit == card.Spades && c.Rank < rank {
			count++
		}
	}
	return count
}

func suitCount(hand []card.Card, suit card.Suit) int {
	count := 0
	for _, c := range hand {
		if c.Suit == suit {
			count++
		}
	}
	return count
}
