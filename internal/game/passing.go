package game

import (
	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// PassDirection says where each player's three passed cards go this round.
type PassDirection string

const (
	PassLeft   PassDirection = "left"
	PassRight  PassDirection = "right"
	PassAcross PassDirection = "across"
	PassNone   PassDirection = "none"
)

// PassCount is the number of cards each player passes.
const PassCount = 3

// passCycle is the rotation of directions over rounds, starting at round 1.
var passCycle = []PassDirection{PassLeft, PassRight, PassAcross, PassNone}

// PassDirectionForRound returns the direction for a round number. The cycle
// has period 4; every fourth round is a hold round with no passing.
func PassDirectionForRound(roundNumber int) PassDirection {
	return passCycle[(roundNumber-1)%len(passCycle)]
}

// passDirectionForRound resolves the round's direction against the state's
// configured cycle, falling back to the standard rotation.
func (s GameState) passDirectionForRound() PassDirection {
	if len(s.PassCycle) == 0 {
		return PassDirectionForRound(s.RoundNumber)
	}
	return s.PassCycle[(s.RoundNumber-1)%len(s.PassCycle)]
}

// PassTargetIndex returns the seat that receives cards passed by the given
// seat under a direction. A hold round targets the passer itself.
func PassTargetIndex(playerIndex int, direction PassDirection) int {
	switch direction {
	case PassLeft:
		return (playerIndex + 1) % PlayerCount
	case PassRight:
		return (playerIndex + 3) % PlayerCount
	case PassAcross:
		return (playerIndex + 2) % PlayerCount
	default:
		return playerIndex
	}
}

// ValidatePassSelection checks a pass selection against the passer's hand:
// exactly three cards, no duplicates, all currently held.
func ValidatePassSelection(selected, hand []card.Card) error {
	if len(selected) != PassCount {
		return ErrWrongPassCount
	}
	seen := make(map[card.Card]bool, PassCount)
	for _, c := range selected {
		if seen[c] {
			return ErrDuplicatePassCard
		}
		seen[c] = true
		if !card.Contains(hand, c) {
			return errCardNotInHand(c)
		}
	}
	return nil
}

// SubmitPassSelection records a player's pass selection. Submissions are
// accepted only during the passing phase, one per player per round.
func SubmitPassSelection(s GameState, playerID string, cards []card.Card) (GameState, error) {
	if !s.IsPassingPhase {
		return s, ErrNotPassingPhase
	}
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return s, ErrPlayerNotFound
	}
	for _, sub := range s.PassSubmissions {
		if sub.PlayerID == playerID {
			return s, ErrAlreadySubmitted
		}
	}
	if err := ValidatePassSelection(cards, s.Hands[idx]); err != nil {
		return s, err
	}
	next := s.Clone()
	next.PassSubmissions = append(next.PassSubmissions, PassSubmission{
		PlayerID: playerID,
		Cards:    append([]card.Card(nil), cards...),
	})
	return next, nil
}

// AllPlayersHavePassed reports whether every seat has a submission.
func AllPlayersHavePassed(s GameState) bool {
	return len(s.PassSubmissions) == len(s.Players)
}

// ExecutePassPhase redistributes all submitted cards along the round's pass
// direction and moves the game into the reveal phase. Every hand keeps its
// size: three cards out, three cards in. Submissions are consumed, so a
// second call fails until a new round collects fresh ones.
func ExecutePassPhase(s GameState) (GameState, error) {
	if !AllPlayersHavePassed(s) {
		return s, ErrMissingSubmissions
	}
	next := s.Clone()
	received := make([][]card.Card, len(next.Players))

	// Remove every submitted card before delivering any, so an exchange
	// between two players cannot hand back a card it just received.
	for _, sub := range next.PassSubmissions {
		idx := next.PlayerIndex(sub.PlayerID)
		hand := next.Hands[idx]
		for _, c := range sub.Cards {
			hand, _ = card.Remove(hand, c)
		}
		next.setHand(idx, hand)
	}
	for _, sub := range next.PassSubmissions {
		idx := next.PlayerIndex(sub.PlayerID)
		target := PassTargetIndex(idx, next.PassDirection)
		next.setHand(target, card.SortHand(append(next.Hands[target], sub.Cards...)))
		received[target] = append([]card.Card(nil), sub.Cards...)
	}

	next.ReceivedCards = received
	next.PassSubmissions = nil
	next.IsPassingPhase = false
	next.IsRevealPhase = true
	return next, nil
}

// PassChooser picks three cards to pass from a hand. The AI subsystem
// supplies the implementation.
type PassChooser func(playerIndex int, hand []card.Card) []card.Card

// ProcessAIPasses collects a submission from every AI seat that has not yet
// passed, using the injected chooser.
func ProcessAIPasses(s GameState, chooser PassChooser) (GameState, error) {
	next := s
	for i, p := range s.Players {
		if !p.IsAI || hasSubmission(next, p.ID) {
			continue
		}
		cards := chooser(i, next.Hands[i])
		var err error
		next, err = SubmitPassSelection(next, p.ID, cards)
		if err != nil {
			return s, err
		}
	}
	return next, nil
}

// ProcessAIPassesAndFinalize collects AI submissions and then runs finalize
// only once every player, human and AI, has submitted.
func ProcessAIPassesAndFinalize(s GameState, chooser PassChooser, finalize func(GameState) (GameState, error)) (GameState, error) {
	next, err := ProcessAIPasses(s, chooser)
	if err != nil {
		return s, err
	}
	if !AllPlayersHavePassed(next) {
		return next, nil
	}
	return finalize(next)
}

func hasSubmission(s GameState, playerID string) bool {
	for _, sub := range s.PassSubmissions {
		if sub.PlayerID == playerID {
			return true
		}
	}
	return false
}

// FinalizePassingPhase leaves the passing phase and starts active play,
// handing the lead to the two of clubs holder.
func FinalizePassingPhase(s GameState) GameState {
	next := s.Clone()
	next.IsPassingPhase = false
	next.IsRevealPhase = false
	next.beginPlay()
	return next
}

// CompleteRevealPhase ends the reveal of received cards and starts active
// play.
func CompleteRevealPhase(s GameState) GameState {
	next := s.Clone()
	next.IsRevealPhase = false
	next.beginPlay()
	return next
}
