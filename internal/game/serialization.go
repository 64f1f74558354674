package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StateChecksum is a deterministic fingerprint of a game state. An
// orchestrator can compare checksums across replicas or replays to detect
// divergent states without shipping the full state.
type StateChecksum struct {
	Hash      string // SHA-256 of the canonical serialization
	Timestamp string // when the checksum was computed
	Version   int    // canonical format version
}

// Snapshot pairs a game state with identity and capture time for replay and
// divergence checks.
type Snapshot struct {
	GameID    string
	Timestamp time.Time
	State     GameState
}

// NewSnapshot captures the state under a game ID. An empty ID gets a fresh
// UUID.
func NewSnapshot(gameID string, state GameState) Snapshot {
	if gameID == "" {
		gameID = uuid.NewString()
	}
	return Snapshot{
		GameID:    gameID,
		Timestamp: time.Now(),
		State:     state.Clone(),
	}
}

// ComputeChecksum fingerprints the snapshot's state. The capture timestamp
// is excluded: only the game state matters, not when it was observed.
func (sn Snapshot) ComputeChecksum() StateChecksum {
	hash := sha256.Sum256([]byte(sn.State.canonical()))
	return StateChecksum{
		Hash:      hex.EncodeToString(hash[:]),
		Timestamp: sn.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
		Version:   1,
	}
}

// canonical builds a canonical text representation of the state. Every
// field of the state appears; ordered fields (current trick, submissions)
// keep their insertion order because that order is load-bearing.
func (s GameState) canonical() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GAME:%d|%d|%d|%d|%t|%t|%t|%t|%t|%t|%s|%d|%d|%d\n",
		s.RoundNumber,
		s.CurrentTrickNumber,
		s.CurrentPlayerIndex,
		s.LastTrickWinnerIndex,
		s.HeartsBroken,
		s.IsPassingPhase,
		s.IsRevealPhase,
		s.IsRoundComplete,
		s.IsGameOver,
		s.ShotTheMoon,
		s.PassDirection,
		s.WinnerIndex,
		s.ScoreLimit,
		len(s.Players),
	)

	for i, p := range s.Players {
		fmt.Fprintf(&buf, "PLAYER:%d|%s|%s|%t|%s|%d|%d|%d\n",
			i, p.ID, p.Name, p.IsAI, p.Difficulty, p.Score, s.Scores[i], s.RoundScores[i])
		for _, c := range s.Hands[i] {
			fmt.Fprintf(&buf, "  HAND:%s\n", c)
		}
		for _, c := range s.PointsCardsTaken[i] {
			fmt.Fprintf(&buf, "  TAKEN:%s\n", c)
		}
		if i < len(s.ReceivedCards) {
			for _, c := range s.ReceivedCards[i] {
				fmt.Fprintf(&buf, "  RECEIVED:%s\n", c)
			}
		}
	}

	for _, play := range s.CurrentTrick {
		fmt.Fprintf(&buf, "TRICK:%s|%s\n", play.PlayerID, play.Card)
	}
	for _, play := range s.LastCompletedTrick {
		fmt.Fprintf(&buf, "LAST_TRICK:%s|%s\n", play.PlayerID, play.Card)
	}
	for _, sub := range s.PassSubmissions {
		fmt.Fprintf(&buf, "PASS:%s", sub.PlayerID)
		for _, c := range sub.Cards {
			fmt.Fprintf(&buf, "|%s", c)
		}
		buf.WriteString("\n")
	}
	for _, rec := range s.RoundHistory {
		fmt.Fprintf(&buf, "ROUND:%d|%v|%t|%d\n", rec.RoundNumber, rec.Scores, rec.ShotTheMoon, rec.ShooterIndex)
	}

	return buf.String()
}
