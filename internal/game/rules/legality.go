package rules

import (
	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// Verdict is the result of a legality check. Reason is set only when the
// play is rejected and is surfaced verbatim to the acting player.
type Verdict struct {
	Valid  bool
	Reason string
}

// Rejection reasons for illegal plays.
const (
	ReasonMustLeadTwoOfClubs = "must lead with the two of clubs"
	ReasonHeartsNotBroken    = "hearts have not been broken yet"
	ReasonFirstTrickPenalty  = "cannot play a penalty card on the first trick"
	ReasonMustFollowSuit     = "must follow suit"
)

func legal() Verdict {
	return Verdict{Valid: true}
}

func illegal(reason string) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

// CanPlayCard decides whether a card may be played from the given hand onto
// the current trick. Checks are ordered: first-trick lead, hearts-broken
// lead, first-trick penalty dump, follow-suit.
func CanPlayCard(c card.Card, hand []card.Card, trick Trick, heartsBroken, firstTrick bool) Verdict {
	leading := len(trick) == 0

	if leading && firstTrick {
		if c != card.TwoOfClubs {
			return illegal(ReasonMustLeadTwoOfClubs)
		}
		return legal()
	}

	if leading {
		if c.Suit == card.Hearts && !heartsBroken && !allHearts(hand) {
			return illegal(ReasonHeartsNotBroken)
		}
		return legal()
	}

	if firstTrick && c.IsPenalty() && !allPenalty(hand) {
		return illegal(ReasonFirstTrickPenalty)
	}

	leadSuit, _ := trick.LeadSuit()
	if c.Suit != leadSuit && hasSuit(hand, leadSuit) {
		return illegal(ReasonMustFollowSuit)
	}
	return legal()
}

// ValidCards filters the hand down to the cards CanPlayCard would accept.
// During play the set is never empty for a well-formed state: a player who
// cannot follow suit may play anything.
func ValidCards(hand []card.Card, trick Trick, heartsBroken, firstTrick bool) []card.Card {
	valid := make([]card.Card, 0, len(hand))
	for _, c := range hand {
		if CanPlayCard(c, hand, trick, heartsBroken, firstTrick).Valid {
			valid = append(valid, c)
		}
	}
	return valid
}

// ShouldBreakHearts reports the hearts-broken flag after the given card is
// played.
func ShouldBreakHearts(c card.Card, heartsBroken bool) bool {
	return heartsBroken || c.Suit == card.Hearts
}

func allHearts(hand []card.Card) bool {
	for _, c := range hand {
		if c.Suit != card.Hearts {
			return false
		}
	}
	return true
}

func allPenalty(hand []card.Card) bool {
	for _, c := range hand {
		if !c.IsPenalty() {
			return false
		}
	}
	return true
}

func hasSuit(hand []card.Card, suit card.Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
