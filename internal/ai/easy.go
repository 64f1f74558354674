package ai

import (
	"math/rand"
	"sort"
	"time"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// EasyStrategy plays close to uniformly among legal cards, with a light
// thumb on the scale against exposing penalty points for no reason. It is
// stateless across tricks and rounds.
type EasyStrategy struct {
	rng *rand.Rand
}

// NewEasyStrategy creates an easy-tier strategy. A nil rng becomes a
// time-seeded source.
func NewEasyStrategy(rng *rand.Rand) *EasyStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EasyStrategy{rng: rng}
}

// ChooseCardsToPass passes the three highest-ranked cards in the hand.
func (e *EasyStrategy) ChooseCardsToPass(ctx PassContext) []card.Card {
	byRank := append([]card.Card(nil), ctx.Hand...)
	sort.SliceStable(byRank, func(i, j int) bool {
		return byRank[i].Rank > byRank[j].Rank
	})
	return byRank[:3]
}

// ChooseCardToPlay draws near-uniformly from the legal set. Penalty cards
// are down-weighted unless the player is void in the lead suit, where
// dumping them is the whole point.
func (e *EasyStrategy) ChooseCardToPlay(ctx PlayContext) card.Card {
	voidDump := false
	if leadSuit, ok := ctx.LeadSuit(); ok {
		voidDump = true
		for _, c := range ctx.ValidCards {
			if c.Suit == leadSuit {
				voidDump = false
				break
			}
		}
	}

	weights := make([]float64, len(ctx.ValidCards))
	total := 0.0
	for i, c := range ctx.ValidCards {
		w := 1.0
		if c.IsPenalty() && !voidDump {
			w = 0.35
		}
		weights[i] = w
		total += w
	}

	draw := e.rng.Float64() * total
	for i, w := range weights {
		draw -= w
		if draw <= 0 {
			return ctx.ValidCards[i]
		}
	}
	return ctx.ValidCards[len(ctx.ValidCards)-1]
}
