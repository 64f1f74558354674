package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearts/hearts-engine-go/internal/game/card"
	"github.com/openhearts/hearts-engine-go/internal/game/rules"
)

// TestChecksumDeterministic verifies that identical states produce the same
// checksum across repeated computations.
func TestChecksumDeterministic(t *testing.T) {
	checksums := make([]string, 10)
	for i := range checksums {
		s := newDealtState(11)
		checksums[i] = NewSnapshot("game-1", s).ComputeChecksum().Hash
	}
	for i := 1; i < len(checksums); i++ {
		assert.Equal(t, checksums[0], checksums[i], "checksum %d not deterministic", i)
	}
}

// TestChecksumDetectsStateChanges verifies that meaningful state changes
// change the checksum.
func TestChecksumDetectsStateChanges(t *testing.T) {
	base := newDealtState(12)
	baseSum := NewSnapshot("game-1", base).ComputeChecksum()

	played, err := PlayCard(base, base.Players[base.CurrentPlayerIndex].ID, card.TwoOfClubs)
	require.NoError(t, err)
	playedSum := NewSnapshot("game-1", played).ComputeChecksum()

	assert.NotEqual(t, baseSum.Hash, playedSum.Hash)
	assert.Equal(t, 1, baseSum.Version)
	assert.NotEmpty(t, baseSum.Timestamp)
}

// TestChecksumIgnoresCaptureTime verifies the capture timestamp does not
// leak into the hash.
func TestChecksumIgnoresCaptureTime(t *testing.T) {
	s := newDealtState(13)
	a := NewSnapshot("game-1", s)
	b := NewSnapshot("game-1", s)
	assert.Equal(t, a.ComputeChecksum().Hash, b.ComputeChecksum().Hash)
}

// TestCanonicalPreservesOrder verifies that trick insertion order is
// load-bearing in the canonical form.
func TestCanonicalPreservesOrder(t *testing.T) {
	s := newDealtState(14)
	a := s.Clone()
	b := s.Clone()

	a.CurrentTrick = append(a.CurrentTrick,
		trickPlay("p0", card.Clubs, card.Two), trickPlay("p1", card.Clubs, card.Five))
	b.CurrentTrick = append(b.CurrentTrick,
		trickPlay("p1", card.Clubs, card.Five), trickPlay("p0", card.Clubs, card.Two))

	assert.NotEqual(t, a.canonical(), b.canonical())
}

func trickPlay(id string, suit card.Suit, rank card.Rank) rules.TrickPlay {
	return rules.TrickPlay{PlayerID: id, Card: card.Card{Suit: suit, Rank: rank}}
}
