package game

import (
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// beginPlay resets the per-round trick counters and hands the lead to the
// holder of the two of clubs. Hands must already be dealt.
func (s *GameState) beginPlay() {
	s.CurrentTrick = nil
	s.LastCompletedTrick = nil
	s.LastTrickWinnerIndex = -1
	s.HeartsBroken = false
	s.CurrentTrickNumber = 1
	s.IsRoundComplete = false
	s.ShotTheMoon = false
	s.PointsCardsTaken = make([][]card.Card, len(s.Players))
	if leader := rules.FindTwoOfClubs(s.Hands); leader >= 0 {
		s.CurrentPlayerIndex = leader
	}
}

// InitializeRound resets all per-round fields and selects the two of clubs
// holder as the first leader, skipping any passing or reveal phase.
func InitializeRound(s GameState) GameState {
	next := s.Clone()
	next.IsPassingPhase = false
	next.IsRevealPhase = false
	next.PassSubmissions = nil
	next.ReceivedCards = nil
	next.RoundScores = make([]int, len(next.Players))
	next.beginPlay()
	return next
}

// StartRoundWithPassingPhase assigns freshly dealt hands and enters the
// passing phase for the round's direction. A hold round (direction none)
// skips passing and reveal entirely and goes straight to play.
func StartRoundWithPassingPhase(s GameState, newHands [][]card.Card) GameState {
	next := s.Clone()
	for i := range next.Players {
		next.setHand(i, card.SortHand(newHands[i]))
	}
	next.PassDirection = next.passDirectionForRound()
	next.RoundScores = make([]int, len(next.Players))
	next.PassSubmissions = nil
	next.ReceivedCards = nil

	if next.PassDirection == PassNone {
		return InitializeRound(next)
	}
	next.beginPlay()
	next.IsPassingPhase = true
	next.IsRevealPhase = false
	return next
}

// PrepareNewRound advances to the next round: bumps the round number,
// clears round scores, keeps cumulative scores, and re-enters the
// passing-or-hold flow with the new hands.
func PrepareNewRound(s GameState, newHands [][]card.Card) GameState {
	next := s.Clone()
	next.RoundNumber++
	next.IsRoundComplete = false
	return StartRoundWithPassingPhase(next, newHands)
}

// ResetGameForNewGame fully resets the table for a fresh game with the same
// seats: round 1, zeroed scores, cleared history.
func ResetGameForNewGame(s GameState, newHands [][]card.Card) GameState {
	next := s.Clone()
	next.RoundNumber = 1
	next.Scores = make([]int, len(next.Players))
	for i := range next.Players {
		next.Players[i].Score = 0
	}
	next.RoundScores = make([]int, len(next.Players))
	next.RoundHistory = nil
	next.IsGameOver = false
	next.IsRoundComplete = false
	next.WinnerIndex = -1
	return StartRoundWithPassingPhase(next, newHands)
}
