package rules

import (
	"strings"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// TrickPlay is a single card played into a trick by a player.
type TrickPlay struct {
	PlayerID string
	Card     card.Card
}

// Trick is the ordered sequence of up to four plays. The first play defines
// the lead suit.
type Trick []TrickPlay

// TrickSize is the number of plays that complete a trick.
const TrickSize = 4

// LeadSuit returns the suit of the first card played. The second return is
// false for an empty trick.
func (t Trick) LeadSuit() (card.Suit, bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[0].Card.Suit, true
}

// IsComplete reports whether all four plays have been made.
func (t Trick) IsComplete() bool {
	return len(t) >= TrickSize
}

// Cards returns the cards of the trick in play order.
func (t Trick) Cards() []card.Card {
	cards := make([]card.Card, len(t))
	for i, play := range t {
		cards[i] = play.Card
	}
	return cards
}

// Contains reports whether the trick holds the given card.
func (t Trick) Contains(c card.Card) bool {
	for _, play := range t {
		if play.Card == c {
			return true
		}
	}
	return false
}

// TotalPoints is the combined penalty value of every card in the trick.
func (t Trick) TotalPoints() int {
	total := 0
	for _, play := range t {
		total += play.Card.Points()
	}
	return total
}

func (t Trick) String() string {
	parts := make([]string, len(t))
	for i, play := range t {
		parts[i] = play.PlayerID + ":" + play.Card.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Copy returns an independent copy of the trick.
func (t Trick) Copy() Trick {
	if t == nil {
		return nil
	}
	return append(Trick(nil), t...)
}
