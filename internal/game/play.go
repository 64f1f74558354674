package game

import (
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// PlayCard applies one card play to the state and returns the resulting
// state. On any rejection the input state is returned unchanged alongside
// the error, so a failed attempt never corrupts the game.
func PlayCard(s GameState, playerID string, c card.Card) (GameState, error) {
	if s.IsGameOver {
		return s, ErrGameOver
	}
	if s.IsPassingPhase || s.IsRevealPhase {
		return s, ErrNotPlayingPhase
	}
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return s, ErrPlayerNotFound
	}
	if idx != s.CurrentPlayerIndex {
		return s, ErrNotYourTurn
	}
	if !card.Contains(s.Hands[idx], c) {
		return s, errCardNotInHand(c)
	}

	firstTrick := s.IsFirstTrick()
	verdict := rules.CanPlayCard(c, s.Hands[idx], s.CurrentTrick, s.HeartsBroken, firstTrick)
	if !verdict.Valid {
		return s, RuleError(verdict.Reason)
	}

	next := s.Clone()
	hand, _ := card.Remove(next.Hands[idx], c)
	next.setHand(idx, hand)
	next.CurrentTrick = append(next.CurrentTrick, rules.TrickPlay{PlayerID: playerID, Card: c})
	next.HeartsBroken = rules.ShouldBreakHearts(c, next.HeartsBroken)

	if !next.CurrentTrick.IsComplete() {
		next.CurrentPlayerIndex = rules.NextPlayerIndex(idx, len(next.Players))
		return next, nil
	}

	next.resolveTrick()
	if rules.IsRoundComplete(next.Hands) {
		next.completeRound()
	}
	return next, nil
}

// resolveTrick settles a complete trick: the winner takes every penalty
// point in it and leads the next trick.
func (s *GameState) resolveTrick() {
	winnerSlot := rules.TrickWinner(s.CurrentTrick)
	winnerIdx := s.PlayerIndex(s.CurrentTrick[winnerSlot].PlayerID)

	s.RoundScores[winnerIdx] += s.CurrentTrick.TotalPoints()
	for _, play := range s.CurrentTrick {
		if play.Card.IsPenalty() {
			s.PointsCardsTaken[winnerIdx] = append(s.PointsCardsTaken[winnerIdx], play.Card)
		}
	}

	s.LastCompletedTrick = s.CurrentTrick
	s.CurrentTrick = nil
	s.LastTrickWinnerIndex = winnerIdx
	s.CurrentPlayerIndex = winnerIdx
	s.CurrentTrickNumber++
}

// completeRound folds the finished round into cumulative scores, applying
// the moon-shot inversion first, and ends the game once any cumulative
// score reaches the limit.
func (s *GameState) completeRound() {
	finalScores := append([]int(nil), s.RoundScores...)
	shooter, shot := rules.CheckShootingTheMoon(finalScores)
	if shot {
		finalScores = rules.ApplyShootingTheMoon(finalScores, shooter)
	} else {
		shooter = -1
	}
	s.RoundScores = finalScores
	s.ShotTheMoon = shot

	for i := range s.Scores {
		s.Scores[i] += finalScores[i]
		s.Players[i].Score = s.Scores[i]
	}
	s.IsRoundComplete = true
	s.RoundHistory = append(s.RoundHistory, RoundScoreRecord{
		RoundNumber:  s.RoundNumber,
		Scores:       append([]int(nil), finalScores...),
		ShotTheMoon:  shot,
		ShooterIndex: shooter,
	})

	for _, score := range s.Scores {
		if score >= s.ScoreLimit {
			s.IsGameOver = true
			s.WinnerIndex = argmin(s.Scores)
			break
		}
	}
}

func argmin(values []int) int {
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}
