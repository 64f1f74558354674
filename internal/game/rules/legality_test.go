package rules

import (
	"testing"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

func c(suit card.Suit, rank card.Rank) card.Card {
	return card.Card{Suit: suit, Rank: rank}
}

func TestCanPlayCard_FirstTrickLead(t *testing.T) {
	hand := []card.Card{
		card.TwoOfClubs,
		c(card.Clubs, card.Ten),
		c(card.Hearts, card.Five),
	}

	verdict := CanPlayCard(c(card.Clubs, card.Ten), hand, nil, false, true)
	if verdict.Valid {
		t.Fatal("expected non-2♣ lead to be rejected on the first trick")
	}
	if verdict.Reason != ReasonMustLeadTwoOfClubs {
		t.Errorf("unexpected reason: %q", verdict.Reason)
	}

	verdict = CanPlayCard(card.TwoOfClubs, hand, nil, false, true)
	if !verdict.Valid {
		t.Errorf("expected 2♣ lead to be accepted, got %q", verdict.Reason)
	}
}

func TestCanPlayCard_HeartsLead(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Five),
		c(card.Diamonds, card.Nine),
	}

	verdict := CanPlayCard(c(card.Hearts, card.Five), hand, nil, false, false)
	if verdict.Valid {
		t.Fatal("expected hearts lead to be rejected before hearts are broken")
	}
	if verdict.Reason != ReasonHeartsNotBroken {
		t.Errorf("unexpected reason: %q", verdict.Reason)
	}

	// Broken hearts allow the lead.
	verdict = CanPlayCard(c(card.Hearts, card.Five), hand, nil, true, false)
	if !verdict.Valid {
		t.Errorf("expected hearts lead to be accepted once broken, got %q", verdict.Reason)
	}

	// An all-hearts hand may lead hearts even unbroken.
	allHearts := []card.Card{
		c(card.Hearts, card.Five),
		c(card.Hearts, card.Jack),
	}
	verdict = CanPlayCard(c(card.Hearts, card.Jack), allHearts, nil, false, false)
	if !verdict.Valid {
		t.Errorf("expected all-hearts hand to lead hearts, got %q", verdict.Reason)
	}
}

func TestCanPlayCard_FirstTrickPenalty(t *testing.T) {
	trick := Trick{{PlayerID: "p0", Card: card.TwoOfClubs}}
	hand := []card.Card{
		c(card.Hearts, card.Ace),
		c(card.Diamonds, card.Three),
	}

	verdict := CanPlayCard(c(card.Hearts, card.Ace), hand, trick, false, true)
	if verdict.Valid {
		t.Fatal("expected penalty card to be rejected on the first trick")
	}
	if verdict.Reason != ReasonFirstTrickPenalty {
		t.Errorf("unexpected reason: %q", verdict.Reason)
	}

	verdict = CanPlayCard(card.QueenOfSpades, []card.Card{card.QueenOfSpades, c(card.Hearts, card.Two)}, trick, false, true)
	if !verdict.Valid {
		t.Errorf("expected all-penalty hand to dump on the first trick, got %q", verdict.Reason)
	}
}

func TestCanPlayCard_FollowSuit(t *testing.T) {
	trick := Trick{{PlayerID: "p0", Card: c(card.Clubs, card.Nine)}}
	hand := []card.Card{
		c(card.Clubs, card.Four),
		c(card.Hearts, card.King),
	}

	verdict := CanPlayCard(c(card.Hearts, card.King), hand, trick, true, false)
	if verdict.Valid {
		t.Fatal("expected off-suit play to be rejected while holding the lead suit")
	}
	if verdict.Reason != ReasonMustFollowSuit {
		t.Errorf("unexpected reason: %q", verdict.Reason)
	}

	// Void in the lead suit: anything goes.
	void := []card.Card{
		c(card.Hearts, card.King),
		card.QueenOfSpades,
	}
	verdict = CanPlayCard(card.QueenOfSpades, void, trick, false, false)
	if !verdict.Valid {
		t.Errorf("expected void hand to play any card, got %q", verdict.Reason)
	}
}

func TestValidCards(t *testing.T) {
	trick := Trick{{PlayerID: "p0", Card: c(card.Spades, card.Six)}}
	hand := []card.Card{
		c(card.Spades, card.Two),
		c(card.Spades, card.King),
		c(card.Hearts, card.Ten),
	}

	valid := ValidCards(hand, trick, false, false)
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid cards, got %d: %v", len(valid), valid)
	}
	for _, vc := range valid {
		if vc.Suit != card.Spades {
			t.Errorf("expected only spades to be valid, got %v", vc)
		}
	}
}

func TestShouldBreakHearts(t *testing.T) {
	if !ShouldBreakHearts(c(card.Hearts, card.Two), false) {
		t.Error("playing a heart must break hearts")
	}
	if ShouldBreakHearts(card.QueenOfSpades, false) {
		t.Error("the queen of spades does not break hearts")
	}
	if !ShouldBreakHearts(c(card.Clubs, card.Five), true) {
		t.Error("hearts stay broken once broken")
	}
}
