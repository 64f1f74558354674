package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

func TestPassDirectionForRound(t *testing.T) {
	expected := map[int]PassDirection{
		1: PassLeft,
		2: PassRight,
		3: PassAcross,
		4: PassNone,
		5: PassLeft,
		8: PassNone,
		9: PassLeft,
	}
	for round, want := range expected {
		assert.Equal(t, want, PassDirectionForRound(round), "round %d", round)
	}
}

func TestPassTargetIndex(t *testing.T) {
	for i := 0; i < PlayerCount; i++ {
		assert.Equal(t, (i+1)%4, PassTargetIndex(i, PassLeft))
		assert.Equal(t, (i+3)%4, PassTargetIndex(i, PassRight))
		assert.Equal(t, (i+2)%4, PassTargetIndex(i, PassAcross))
		assert.Equal(t, i, PassTargetIndex(i, PassNone))
	}
}

func newPassingState(seed int64) GameState {
	s := NewGameState(testPlayers(), 0)
	hands := card.Deal(card.Shuffle(card.NewDeck(), rand.New(rand.NewSource(seed))))
	return StartRoundWithPassingPhase(s, hands)
}

func TestValidatePassSelection(t *testing.T) {
	s := newPassingState(1)
	hand := s.Hands[0]

	assert.NoError(t, ValidatePassSelection(hand[:3], hand))

	err := ValidatePassSelection(hand[:2], hand)
	assert.ErrorIs(t, err, ErrWrongPassCount)

	err = ValidatePassSelection([]card.Card{hand[0], hand[0], hand[1]}, hand)
	assert.ErrorIs(t, err, ErrDuplicatePassCard)

	foreign := s.Hands[1][0]
	err = ValidatePassSelection([]card.Card{hand[0], hand[1], foreign}, hand)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in hand")
}

func TestSubmitPassSelection_OncePerRound(t *testing.T) {
	s := newPassingState(2)

	next, err := SubmitPassSelection(s, "p0", s.Hands[0][:3])
	require.NoError(t, err)
	assert.Len(t, next.PassSubmissions, 1)

	_, err = SubmitPassSelection(next, "p0", next.Hands[0][3:6])
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	_, err = SubmitPassSelection(next, "ghost", next.Hands[0][:3])
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestSubmitPassSelection_RequiresPassingPhase(t *testing.T) {
	// Hold round: no passing phase exists at all.
	hold := NewGameState(testPlayers(), 0)
	hold.RoundNumber = 4
	hold = StartRoundWithPassingPhase(hold, dealSeed(7))
	require.False(t, hold.IsPassingPhase)
	_, err := SubmitPassSelection(hold, "p0", hold.Hands[0][:3])
	assert.ErrorIs(t, err, ErrNotPassingPhase)

	// Mid-play: the round's passing phase is already over.
	playing := newDealtState(8)
	_, err = SubmitPassSelection(playing, "p0", playing.Hands[0][:3])
	assert.ErrorIs(t, err, ErrNotPassingPhase)
}

func TestExecutePassPhase(t *testing.T) {
	s := newPassingState(3)
	require.True(t, s.IsPassingPhase)
	assert.Equal(t, PassLeft, s.PassDirection)

	passed := make([][]card.Card, PlayerCount)
	var err error
	for i, p := range s.Players {
		passed[i] = append([]card.Card(nil), s.Hands[i][:3]...)
		s, err = SubmitPassSelection(s, p.ID, passed[i])
		require.NoError(t, err)
	}
	require.True(t, AllPlayersHavePassed(s))

	next, err := ExecutePassPhase(s)
	require.NoError(t, err)

	assert.False(t, next.IsPassingPhase)
	assert.True(t, next.IsRevealPhase)
	for i := range next.Players {
		assert.Len(t, next.Hands[i], card.HandSize, "hand sizes are conserved")
		target := PassTargetIndex(i, PassLeft)
		for _, c := range passed[i] {
			assert.True(t, card.Contains(next.Hands[target], c), "%s reaches seat %d", c, target)
			assert.False(t, card.Contains(next.Hands[i], c), "%s left seat %d", c, i)
		}
		assert.ElementsMatch(t, passed[i], next.ReceivedCards[target])
	}

	// Submissions are consumed: a second execute must fail.
	_, err = ExecutePassPhase(next)
	assert.ErrorIs(t, err, ErrMissingSubmissions)
}

func TestExecutePassPhase_RequiresAllSubmissions(t *testing.T) {
	s := newPassingState(4)
	var err error
	s, err = SubmitPassSelection(s, "p0", s.Hands[0][:3])
	require.NoError(t, err)

	_, err = ExecutePassPhase(s)
	assert.ErrorIs(t, err, ErrMissingSubmissions)
	assert.Contains(t, err.Error(), "submitted")
}

func TestProcessAIPasses(t *testing.T) {
	s := newPassingState(5)
	for i := range s.Players {
		s.Players[i].IsAI = i != 0 // seat 0 stays human
	}

	chooser := func(playerIndex int, hand []card.Card) []card.Card {
		return hand[:3]
	}

	next, err := ProcessAIPasses(s, chooser)
	require.NoError(t, err)
	assert.Len(t, next.PassSubmissions, 3, "only AI seats submit")
	assert.False(t, AllPlayersHavePassed(next))

	// Finalize fires only once the human has submitted too.
	finalized := false
	finalize := func(st GameState) (GameState, error) {
		finalized = true
		return ExecutePassPhase(st)
	}
	next2, err := ProcessAIPassesAndFinalize(next, chooser, finalize)
	require.NoError(t, err)
	assert.False(t, finalized)
	assert.Len(t, next2.PassSubmissions, 3)

	next2, err = SubmitPassSelection(next2, "p0", next2.Hands[0][:3])
	require.NoError(t, err)
	next3, err := ProcessAIPassesAndFinalize(next2, chooser, finalize)
	require.NoError(t, err)
	assert.True(t, finalized)
	assert.True(t, next3.IsRevealPhase)
}

func TestFinalizeAndReveal(t *testing.T) {
	s := newPassingState(6)
	var err error
	for _, p := range s.Players {
		s, err = SubmitPassSelection(s, p.ID, s.HandOf(p.ID)[:3])
		require.NoError(t, err)
	}
	s, err = ExecutePassPhase(s)
	require.NoError(t, err)

	playing := CompleteRevealPhase(s)
	assert.False(t, playing.IsRevealPhase)
	assert.False(t, playing.IsPassingPhase)
	assert.Equal(t, 1, playing.CurrentTrickNumber)
	holder := playing.CurrentPlayerIndex
	assert.True(t, card.Contains(playing.Hands[holder], card.TwoOfClubs),
		"the 2♣ holder leads after the reveal")
}
