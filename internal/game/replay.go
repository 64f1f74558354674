package game

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Replay records the sequence of game states produced by the pure
// transitions, ready for step-through playback. Because every transition
// returns a fresh state value, each recorded entry is already an immutable
// snapshot.
type Replay struct {
	GameID       string
	States       []GameState
	CurrentIndex int

	mu     sync.RWMutex
	logger *zap.Logger
}

// NewReplay creates an empty replay. An empty gameID gets a fresh UUID; a
// nil logger is replaced with a no-op one.
func NewReplay(gameID string, logger *zap.Logger) *Replay {
	if gameID == "" {
		gameID = uuid.NewString()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Replay{
		GameID: gameID,
		logger: logger,
	}
}

// Record appends a state to the replay.
func (r *Replay) Record(state GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.States = append(r.States, state.Clone())
}

// Start rewinds the replay to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CurrentIndex = 0
}

// Next returns the state at the cursor and advances it. The second return
// is false once the replay is exhausted.
func (r *Replay) Next() (GameState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex >= len(r.States) {
		return GameState{}, false
	}
	state := r.States[r.CurrentIndex]
	r.CurrentIndex++
	return state, true
}

// Previous steps the cursor back and returns the state there. The second
// return is false at the beginning.
func (r *Replay) Previous() (GameState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex <= 0 {
		return GameState{}, false
	}
	r.CurrentIndex--
	return r.States[r.CurrentIndex], true
}

// Size returns the number of recorded states.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.States)
}

// StateAt returns the recorded state at an index without moving the cursor.
func (r *Replay) StateAt(index int) (GameState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.States) {
		return GameState{}, false
	}
	return r.States[index], true
}

// replayMetadata is the file header for saved replays.
type replayMetadata struct {
	GameID     string
	Timestamp  time.Time
	Version    int
	StateCount int
}

// SaveToFile writes the replay to <directory>/<gameID>.replay as a gzipped
// gob stream.
func (r *Replay) SaveToFile(directory string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", r.GameID))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()
	encoder := gob.NewEncoder(gzipWriter)

	metadata := replayMetadata{
		GameID:     r.GameID,
		Timestamp:  time.Now(),
		Version:    1,
		StateCount: len(r.States),
	}
	if err := encoder.Encode(&metadata); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	for i, state := range r.States {
		if err := encoder.Encode(&state); err != nil {
			return fmt.Errorf("failed to encode state %d: %w", i, err)
		}
	}

	r.logger.Info("replay saved",
		zap.String("game_id", r.GameID),
		zap.Int("states", len(r.States)),
		zap.String("file", filename),
	)
	return nil
}

// LoadReplayFromFile reads a replay previously written by SaveToFile.
func LoadReplayFromFile(directory, gameID string, logger *zap.Logger) (*Replay, error) {
	filename := filepath.Join(directory, fmt.Sprintf("%s.replay", gameID))
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()
	decoder := gob.NewDecoder(gzipReader)

	var metadata replayMetadata
	if err := decoder.Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if metadata.Version != 1 {
		return nil, fmt.Errorf("unsupported replay version: %d", metadata.Version)
	}

	replay := NewReplay(metadata.GameID, logger)
	for i := 0; i < metadata.StateCount; i++ {
		var state GameState
		if err := decoder.Decode(&state); err != nil {
			return nil, fmt.Errorf("failed to decode state %d: %w", i, err)
		}
		replay.States = append(replay.States, state)
	}
	return replay, nil
}
