package rules

import (
	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// MoonPoints is the full penalty total of a round; taking all of it inverts
// scoring.
const MoonPoints = 26

// TrickWinner returns the index within the trick of the winning play: the
// highest rank among cards matching the lead suit. Off-suit cards never win.
// Returns -1 for an empty trick.
func TrickWinner(t Trick) int {
	if len(t) == 0 {
		return -1
	}
	leadSuit := t[0].Card.Suit
	winner := 0
	for i := 1; i < len(t); i++ {
		c := t[i].Card
		if c.Suit == leadSuit && c.Rank > t[winner].Card.Rank {
			winner = i
		}
	}
	return winner
}

// TrickPoints maps each player in the trick to the penalty value of the card
// that player contributed. This is informational only: round scoring credits
// the whole trick total to the winner.
func TrickPoints(t Trick) map[string]int {
	points := make(map[string]int, len(t))
	for _, play := range t {
		points[play.PlayerID] = play.Card.Points()
	}
	return points
}

// CheckShootingTheMoon reports whether exactly one player took the full 26
// penalty points this round, and which one.
func CheckShootingTheMoon(roundScores []int) (shooter int, shot bool) {
	shooter = -1
	for i, score := range roundScores {
		if score == MoonPoints {
			if shooter != -1 {
				return -1, false
			}
			shooter = i
		}
	}
	return shooter, shooter != -1
}

// ApplyShootingTheMoon returns the adjusted round scores after a moon shot:
// the shooter drops to 0 and every other player takes 26.
func ApplyShootingTheMoon(roundScores []int, shooter int) []int {
	adjusted := make([]int, len(roundScores))
	for i := range adjusted {
		if i == shooter {
			adjusted[i] = 0
		} else {
			adjusted[i] = MoonPoints
		}
	}
	return adjusted
}

// IsRoundComplete reports whether every hand has been played out.
func IsRoundComplete(hands [][]card.Card) bool {
	for _, hand := range hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

// FindTwoOfClubs returns the index of the hand holding the two of clubs, or
// -1 if no hand holds it.
func FindTwoOfClubs(hands [][]card.Card) int {
	for i, hand := range hands {
		if card.Contains(hand, card.TwoOfClubs) {
			return i
		}
	}
	return -1
}

// NextPlayerIndex advances a seat index circularly around the table.
func NextPlayerIndex(index, playerCount int) int {
	return (index + 1) % playerCount
}
