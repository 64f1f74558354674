package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearts/hearts-engine-go/internal/config"
	"github.com/openhearts/hearts-engine-go/internal/game"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

func sessionPlayers() []game.Player {
	return []game.Player{
		{ID: "p0", Name: "North", IsAI: true, Difficulty: game.DifficultyHard},
		{ID: "p1", Name: "East", IsAI: true, Difficulty: game.DifficultyMedium},
		{ID: "p2", Name: "South", IsAI: true, Difficulty: game.DifficultyEasy},
		{ID: "p3", Name: "West", IsAI: true, Difficulty: game.DifficultyHard},
	}
}

// dealtState deals a deterministic round with no passing phase.
func dealtState(t *testing.T, seed int64) game.GameState {
	t.Helper()
	s := game.NewGameState(sessionPlayers(), 0)
	hands := card.Deal(card.Shuffle(card.NewDeck(), rand.New(rand.NewSource(seed))))
	return game.InitializeRound(game.StartRoundWithPassingPhase(s, hands))
}

func newTestSession() *Session {
	return NewSession(config.Default().AI, nil, rand.New(rand.NewSource(7)))
}

func TestSession_ChooseCardIsLegal(t *testing.T) {
	session := newTestSession()
	state := dealtState(t, 1)

	current := state.Players[state.CurrentPlayerIndex].ID
	chosen, err := session.ChooseCard(state, current)
	require.NoError(t, err)

	valid := rules.ValidCards(
		state.Hands[state.CurrentPlayerIndex], state.CurrentTrick,
		state.HeartsBroken, state.IsFirstTrick())
	assert.Contains(t, valid, chosen)
}

func TestSession_UnknownPlayer(t *testing.T) {
	session := newTestSession()
	state := dealtState(t, 2)

	_, err := session.ChooseCard(state, "ghost")
	assert.ErrorIs(t, err, game.ErrPlayerNotFound)
	_, err = session.ChooseCardsToPass(state, "ghost")
	assert.ErrorIs(t, err, game.ErrPlayerNotFound)
}

func TestSession_UnknownDifficulty(t *testing.T) {
	session := newTestSession()
	state := dealtState(t, 3)
	state.Players[0].Difficulty = "nightmare"

	_, err := session.ChooseCard(state, "p0")
	assert.ErrorContains(t, err, "unknown AI difficulty")
}

func TestSession_StrategiesAreCachedPerPlayer(t *testing.T) {
	session := newTestSession()
	state := dealtState(t, 4)

	_, err := session.ChooseCardsToPass(state, "p0")
	require.NoError(t, err)
	first, ok := session.HardInstance("p0")
	require.True(t, ok)

	_, err = session.ChooseCardsToPass(state, "p0")
	require.NoError(t, err)
	second, _ := session.HardInstance("p0")
	assert.Same(t, first, second)

	_, ok = session.HardInstance("p1")
	assert.False(t, ok, "medium seat has no hard instance")

	session.Clear()
	_, ok = session.HardInstance("p0")
	assert.False(t, ok)
}

func TestSession_NotifyTrickCompleteFeedsHardMemory(t *testing.T) {
	session := newTestSession()
	state := dealtState(t, 5)

	_, err := session.ChooseCardsToPass(state, "p0")
	require.NoError(t, err)

	state.LastCompletedTrick = rules.Trick{
		{PlayerID: "p1", Card: card.Card{Suit: card.Clubs, Rank: card.Two}},
		{PlayerID: "p2", Card: card.Card{Suit: card.Clubs, Rank: card.Nine}},
		{PlayerID: "p3", Card: card.Card{Suit: card.Diamonds, Rank: card.Four}},
		{PlayerID: "p0", Card: card.Card{Suit: card.Clubs, Rank: card.Ten}},
	}
	state.LastTrickWinnerIndex = 0
	state.CurrentTrickNumber = 2
	session.NotifyTrickComplete(state)

	hard, ok := session.HardInstance("p0")
	require.True(t, ok)
	assert.True(t, hard.Memory().IsVoid(3, card.Clubs))

	session.ResetForNewRound()
	assert.False(t, hard.Memory().IsVoid(3, card.Clubs))
}

func TestSession_PassChooserReturnsThreeFromHand(t *testing.T) {
	session := newTestSession()
	state := dealtState(t, 6)

	chooser := session.PassChooser(state)
	for seat := 0; seat < game.PlayerCount; seat++ {
		picks := chooser(seat, state.Hands[seat])
		require.Len(t, picks, game.PassCount)
		seen := make(map[card.Card]bool)
		for _, pick := range picks {
			assert.True(t, card.Contains(state.Hands[seat], pick))
			assert.False(t, seen[pick], "duplicate pass pick")
			seen[pick] = true
		}
	}
}
