package card

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// HandSize is the number of cards dealt to each of the four players.
const HandSize = 13

// NewDeck builds the full 52-card deck, one card per (suit, rank) pair.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of the deck using a Fisher-Yates pass over
// the provided source. The input deck is not modified. A nil rng falls back
// to a time-seeded source.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shuffled := append([]Card(nil), deck...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deal splits a full deck into 4 sorted hands of 13 cards, dealt round-robin
// by index. Dealing from anything other than a 52-card deck is caller
// misuse, not a game condition, and panics.
func Deal(deck []Card) [][]Card {
	if len(deck) != DeckSize {
		panic(fmt.Sprintf("card: deal requires a full deck of %d cards, got %d", DeckSize, len(deck)))
	}
	hands := make([][]Card, 4)
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}
	for i, c := range deck {
		hands[i%4] = append(hands[i%4], c)
	}
	for i := range hands {
		hands[i] = SortHand(hands[i])
	}
	return hands
}

// SortHand returns a copy of the hand in presentation order: grouped by suit
// (clubs, diamonds, spades, hearts), rank ascending within each suit.
func SortHand(hand []Card) []Card {
	sorted := append([]Card(nil), hand...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Suit != sorted[j].Suit {
			return sorted[i].Suit < sorted[j].Suit
		}
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

// Contains reports whether the hand holds the given card.
func Contains(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// Remove returns a copy of the hand with the first occurrence of c removed,
// and whether the card was present.
func Remove(hand []Card, c Card) ([]Card, bool) {
	for i, h := range hand {
		if h == c {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out, true
		}
	}
	return append([]Card(nil), hand...), false
}
