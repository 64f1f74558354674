package card

import (
	"math/rand"
	"testing"
)

func TestPoints(t *testing.T) {
	for rank := Two; rank <= Ace; rank++ {
		if got := (Card{Suit: Hearts, Rank: rank}).Points(); got != 1 {
			t.Errorf("heart %v worth %d points, want 1", rank, got)
		}
	}
	if got := QueenOfSpades.Points(); got != 13 {
		t.Errorf("Q♠ worth %d points, want 13", got)
	}
	if got := (Card{Suit: Spades, Rank: King}).Points(); got != 0 {
		t.Errorf("K♠ worth %d points, want 0", got)
	}
	if got := (Card{Suit: Clubs, Rank: Two}).Points(); got != 0 {
		t.Errorf("2♣ worth %d points, want 0", got)
	}
}

func TestDeckTotalPoints(t *testing.T) {
	total := 0
	for _, c := range NewDeck() {
		total += c.Points()
	}
	if total != 26 {
		t.Errorf("deck carries %d penalty points, want 26", total)
	}
}

func TestString(t *testing.T) {
	cases := map[Card]string{
		{Suit: Spades, Rank: Queen}: "Q♠",
		{Suit: Clubs, Rank: Two}:    "2♣",
		{Suit: Hearts, Rank: Ace}:   "A♥",
		{Suit: Diamonds, Rank: Ten}: "10♦",
	}
	for c, want := range cases {
		if c.String() != want {
			t.Errorf("%#v.String() = %q, want %q", c, c.String(), want)
		}
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(deck), DeckSize)
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	deck := NewDeck()
	rng := rand.New(rand.NewSource(42))
	shuffled := Shuffle(deck, rng)

	if len(shuffled) != DeckSize {
		t.Fatalf("shuffled deck has %d cards", len(shuffled))
	}
	counts := make(map[Card]int)
	for _, c := range deck {
		counts[c]++
	}
	for _, c := range shuffled {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %v count off by %d after shuffle", c, n)
		}
	}

	// The input deck must be untouched.
	fresh := NewDeck()
	for i := range deck {
		if deck[i] != fresh[i] {
			t.Fatal("shuffle mutated its input")
		}
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := Shuffle(NewDeck(), rand.New(rand.NewSource(7)))
	b := Shuffle(NewDeck(), rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different shuffles")
		}
	}
}
