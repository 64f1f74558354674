package card

import (
	"math/rand"
	"testing"
)

func TestDeal(t *testing.T) {
	hands := Deal(Shuffle(NewDeck(), rand.New(rand.NewSource(1))))
	if len(hands) != 4 {
		t.Fatalf("dealt %d hands, want 4", len(hands))
	}
	seen := make(map[Card]bool)
	for i, hand := range hands {
		if len(hand) != HandSize {
			t.Errorf("hand %d has %d cards, want %d", i, len(hand), HandSize)
		}
		for _, c := range hand {
			if seen[c] {
				t.Errorf("card %v dealt twice", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("union of hands has %d distinct cards, want %d", len(seen), DeckSize)
	}
}

func TestDealPanicsOnShortDeck(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when dealing from a short deck")
		}
	}()
	Deal(NewDeck()[:51])
}

func TestSortHand(t *testing.T) {
	hand := []Card{
		{Suit: Hearts, Rank: Two},
		{Suit: Clubs, Rank: Ace},
		{Suit: Clubs, Rank: Three},
		{Suit: Spades, Rank: Queen},
		{Suit: Diamonds, Rank: King},
	}
	sorted := SortHand(hand)

	want := []Card{
		{Suit: Clubs, Rank: Three},
		{Suit: Clubs, Rank: Ace},
		{Suit: Diamonds, Rank: King},
		{Suit: Spades, Rank: Queen},
		{Suit: Hearts, Rank: Two},
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", sorted, want)
		}
	}
	// Input order untouched.
	if hand[0] != (Card{Suit: Hearts, Rank: Two}) {
		t.Error("SortHand mutated its input")
	}
}

func TestRemove(t *testing.T) {
	hand := []Card{
		{Suit: Clubs, Rank: Two},
		{Suit: Clubs, Rank: Three},
	}
	out, ok := Remove(hand, Card{Suit: Clubs, Rank: Two})
	if !ok || len(out) != 1 || out[0] != (Card{Suit: Clubs, Rank: Three}) {
		t.Errorf("Remove = %v ok=%v", out, ok)
	}
	if len(hand) != 2 {
		t.Error("Remove mutated its input")
	}

	_, ok = Remove(hand, Card{Suit: Hearts, Rank: Nine})
	if ok {
		t.Error("Remove reported success for an absent card")
	}
}
