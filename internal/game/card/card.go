package card

import "fmt"

// Suit identifies one of the four French suits. The ordering is the
// presentation ordering used when sorting a hand: clubs, diamonds, spades,
// hearts.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Spades:   "♠",
	Hearts:   "♥",
}

func (s Suit) String() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return fmt.Sprintf("SUIT_%d", int(s))
}

// Suits lists all suits in presentation order.
var Suits = []Suit{Clubs, Diamonds, Spades, Hearts}

// Rank is a card rank from 2 through 14, where 11=J, 12=Q, 13=K, 14=A.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is an immutable card value. Its penalty value is derived from
// identity, never stored: each heart is worth 1 point and the queen of
// spades is worth 13, for 26 penalty points per round.
type Card struct {
	Suit Suit
	Rank Rank
}

// New constructs a card value.
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// TwoOfClubs leads the first trick of every round.
var TwoOfClubs = Card{Suit: Clubs, Rank: Two}

// QueenOfSpades is the 13-point penalty card.
var QueenOfSpades = Card{Suit: Spades, Rank: Queen}

// Points returns the penalty value of the card.
func (c Card) Points() int {
	switch {
	case c.Suit == Hearts:
		return 1
	case c == QueenOfSpades:
		return 13
	default:
		return 0
	}
}

// IsPenalty reports whether the card carries penalty points.
func (c Card) IsPenalty() bool {
	return c.Points() > 0
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
