package game

import (
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// Difficulty selects an AI strategy tier for a seat.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultScoreLimit is the cumulative score at which the game ends.
const DefaultScoreLimit = 100

// PlayerCount is the fixed table size.
const PlayerCount = 4

// Player is one seat at the table. Score mirrors the authoritative
// cumulative total in GameState.Scores for convenience.
type Player struct {
	ID         string
	Name       string
	IsAI       bool
	Difficulty Difficulty
	Hand       []card.Card
	Score      int
}

// PassSubmission records the three cards a player has committed to pass
// this round.
type PassSubmission struct {
	PlayerID string
	Cards    []card.Card
}

// RoundScoreRecord is one entry of the per-game round history. Scores are
// the round's final values, after any moon-shot adjustment.
type RoundScoreRecord struct {
	RoundNumber  int
	Scores       []int
	ShotTheMoon  bool
	ShooterIndex int
}

// GameState is the complete state of one game. States are values: every
// transition deep-copies its input and returns a new state, so callers can
// hold old states for replay and equality checks.
//
// Hands[i] and Players[i].Hand always alias the same slice so either view
// observes the same cards.
type GameState struct {
	Players              []Player
	Hands                [][]card.Card
	CurrentTrick         rules.Trick
	LastCompletedTrick   rules.Trick
	LastTrickWinnerIndex int
	Scores               []int
	RoundScores          []int
	HeartsBroken         bool
	CurrentPlayerIndex   int
	RoundNumber          int
	CurrentTrickNumber   int
	IsPassingPhase       bool
	IsRevealPhase        bool
	IsRoundComplete      bool
	IsGameOver           bool
	PassDirection        PassDirection
	PassSubmissions      []PassSubmission
	ReceivedCards        [][]card.Card
	PointsCardsTaken     [][]card.Card
	RoundHistory         []RoundScoreRecord
	ShotTheMoon          bool
	WinnerIndex          int
	ScoreLimit           int
	// PassCycle overrides the default left/right/across/none rotation when
	// set. Applied cyclically starting at round 1.
	PassCycle []PassDirection
}

// NewGameState creates the state for round 1 with empty hands. A
// scoreLimit of 0 means DefaultScoreLimit.
func NewGameState(players []Player, scoreLimit int) GameState {
	if scoreLimit <= 0 {
		scoreLimit = DefaultScoreLimit
	}
	n := len(players)
	s := GameState{
		Players:              append([]Player(nil), players...),
		Hands:                make([][]card.Card, n),
		LastTrickWinnerIndex: -1,
		Scores:               make([]int, n),
		RoundScores:          make([]int, n),
		RoundNumber:          1,
		CurrentTrickNumber:   1,
		PointsCardsTaken:     make([][]card.Card, n),
		WinnerIndex:          -1,
		ScoreLimit:           scoreLimit,
	}
	for i := range s.Players {
		hand := append([]card.Card(nil), s.Players[i].Hand...)
		s.Players[i].Hand = hand
		s.Hands[i] = hand
	}
	return s
}

// Clone returns a deep copy of the state. The hands mirror is preserved:
// the copy's Hands[i] aliases its Players[i].Hand.
func (s GameState) Clone() GameState {
	out := s
	out.Players = append([]Player(nil), s.Players...)
	out.Hands = make([][]card.Card, len(s.Players))
	for i := range out.Players {
		hand := append([]card.Card(nil), s.Players[i].Hand...)
		out.Players[i].Hand = hand
		out.Hands[i] = hand
	}
	out.CurrentTrick = s.CurrentTrick.Copy()
	out.LastCompletedTrick = s.LastCompletedTrick.Copy()
	out.Scores = append([]int(nil), s.Scores...)
	out.RoundScores = append([]int(nil), s.RoundScores...)
	if s.PassSubmissions != nil {
		out.PassSubmissions = make([]PassSubmission, len(s.PassSubmissions))
		for i, sub := range s.PassSubmissions {
			out.PassSubmissions[i] = PassSubmission{
				PlayerID: sub.PlayerID,
				Cards:    append([]card.Card(nil), sub.Cards...),
			}
		}
	}
	out.PassCycle = append([]PassDirection(nil), s.PassCycle...)
	out.ReceivedCards = copyCardGrid(s.ReceivedCards)
	out.PointsCardsTaken = copyCardGrid(s.PointsCardsTaken)
	if s.RoundHistory != nil {
		out.RoundHistory = make([]RoundScoreRecord, len(s.RoundHistory))
		for i, rec := range s.RoundHistory {
			rec.Scores = append([]int(nil), rec.Scores...)
			out.RoundHistory[i] = rec
		}
	}
	return out
}

func copyCardGrid(grid [][]card.Card) [][]card.Card {
	if grid == nil {
		return nil
	}
	out := make([][]card.Card, len(grid))
	for i, cards := range grid {
		out[i] = append([]card.Card(nil), cards...)
	}
	return out
}

// setHand replaces a player's hand, keeping the Hands mirror in sync.
func (s *GameState) setHand(index int, hand []card.Card) {
	s.Players[index].Hand = hand
	s.Hands[index] = hand
}

// PlayerIndex returns the seat index for a player ID, or -1.
func (s GameState) PlayerIndex(playerID string) int {
	for i, p := range s.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// IsFirstTrick reports whether the round's opening trick is still being
// played. Hand sizes cannot answer this: they shrink as soon as the leader
// plays, while the opening trick's restrictions bind all four seats.
func (s GameState) IsFirstTrick() bool {
	return s.CurrentTrickNumber == 1
}

// HandOf returns the named player's current hand, or nil for an unknown ID.
func (s GameState) HandOf(playerID string) []card.Card {
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return nil
	}
	return s.Hands[idx]
}
