package game

import (
	"fmt"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// RuleError is a recoverable domain error: the attempted action was rejected
// and the state it was attempted against is returned unchanged. The text is
// surfaced to the acting player as-is.
type RuleError string

func (e RuleError) Error() string { return string(e) }

const (
	ErrGameOver           = RuleError("game is over")
	ErrPlayerNotFound     = RuleError("Player not found")
	ErrNotYourTurn        = RuleError("Not your turn")
	ErrNotPlayingPhase    = RuleError("cannot play a card during the passing phase")
	ErrNotPassingPhase    = RuleError("cannot submit a pass selection outside the passing phase")
	ErrAlreadySubmitted   = RuleError("already submitted pass selection")
	ErrMissingSubmissions = RuleError("not all players have submitted pass selections")
	ErrWrongPassCount     = RuleError("must select exactly 3 cards to pass")
	ErrDuplicatePassCard  = RuleError("duplicate card in pass selection")
)

func errCardNotInHand(c card.Card) error {
	return RuleError(fmt.Sprintf("%s not in hand", c))
}
