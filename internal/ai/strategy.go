package ai

import (
	"github.com/openhearts/hearts-engine-go/internal/game"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// PlayContext is everything a strategy may consult when choosing a card.
// ValidCards comes from the rules engine, so strategies never re-check
// legality.
type PlayContext struct {
	PlayerIndex  int
	Hand         []card.Card
	ValidCards   []card.Card
	Trick        rules.Trick
	HeartsBroken bool
	IsFirstTrick bool
	TrickNumber  int
	Scores       []int
	RoundScores  []int
}

// LeadSuit returns the current trick's lead suit; ok is false when the
// strategy is leading.
func (ctx PlayContext) LeadSuit() (card.Suit, bool) {
	return ctx.Trick.LeadSuit()
}

// IsLeading reports whether the strategy opens the trick.
func (ctx PlayContext) IsLeading() bool {
	return len(ctx.Trick) == 0
}

// IsLastSeat reports whether every other player has already played.
func (ctx PlayContext) IsLastSeat() bool {
	return len(ctx.Trick) == rules.TrickSize-1
}

// PassContext is the input for a passing decision.
type PassContext struct {
	PlayerIndex int
	Hand        []card.Card
	Scores      []int
	Direction   game.PassDirection
}

// Strategy is the decision contract. Exactly three implementations exist,
// one per difficulty tier.
type Strategy interface {
	// ChooseCardsToPass returns exactly three distinct cards from the hand.
	ChooseCardsToPass(ctx PassContext) []card.Card
	// ChooseCardToPlay returns one card from ctx.ValidCards.
	ChooseCardToPlay(ctx PlayContext) card.Card
}

// TrickObserver is implemented by strategies that keep cross-trick memory.
type TrickObserver interface {
	OnTrickComplete(trick rules.Trick, winnerIndex, trickNumber int)
}

// RoundObserver is implemented by strategies that reset state between
// rounds.
type RoundObserver interface {
	OnRoundStart()
}

// NewPlayContext assembles a play decision context from the game state,
// running the rules engine to produce the legal card set.
func NewPlayContext(s game.GameState, playerIndex int) PlayContext {
	hand := s.Hands[playerIndex]
	firstTrick := s.IsFirstTrick()
	return PlayContext{
		PlayerIndex:  playerIndex,
		Hand:         hand,
		ValidCards:   rules.ValidCards(hand, s.CurrentTrick, s.HeartsBroken, firstTrick),
		Trick:        s.CurrentTrick,
		HeartsBroken: s.HeartsBroken,
		IsFirstTrick: firstTrick,
		TrickNumber:  s.CurrentTrickNumber,
		Scores:       s.Scores,
		RoundScores:  s.RoundScores,
	}
}

// NewPassContext assembles a passing decision context from the game state.
func NewPassContext(s game.GameState, playerIndex int) PassContext {
	return PassContext{
		PlayerIndex: playerIndex,
		Hand:        s.Hands[playerIndex],
		Scores:      s.Scores,
		Direction:   s.PassDirection,
	}
}
