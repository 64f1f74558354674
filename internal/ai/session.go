package ai

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openhearts/hearts-engine-go/internal/config"
	"github.com/openhearts/hearts-engine-go/internal/game"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

// Session owns the AI instances for one game. It is created alongside the
// game and discarded with it, so hard-tier memory can never leak into
// another game or another room running in the same process. Strategies are
// constructed lazily, keyed by player ID.
type Session struct {
	id     string
	cfg    config.AIConfig
	logger *zap.Logger
	rng    *rand.Rand

	mu         sync.Mutex
	strategies map[string]Strategy
}

// NewSession creates an AI session. A nil logger becomes a no-op logger; a
// nil rng becomes a time-seeded source.
func NewSession(cfg config.AIConfig, logger *zap.Logger, rng *rand.Rand) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		id:         uuid.NewString(),
		cfg:        cfg,
		logger:     logger,
		rng:        rng,
		strategies: make(map[string]Strategy),
	}
}

// ID returns the session's identifier, useful for log correlation.
func (s *Session) ID() string {
	return s.id
}

// ChooseCard picks the card an AI seat plays in the current state. The
// legal set is computed by the rules engine before the strategy sees it.
func (s *Session) ChooseCard(state game.GameState, playerID string) (card.Card, error) {
	seat := state.PlayerIndex(playerID)
	if seat < 0 {
		return card.Card{}, game.ErrPlayerNotFound
	}
	strategy, err := s.strategyFor(state, seat)
	if err != nil {
		return card.Card{}, err
	}
	ctx := NewPlayContext(state, seat)
	if len(ctx.ValidCards) == 0 {
		return card.Card{}, fmt.Errorf("no valid cards for player %s", playerID)
	}
	chosen := strategy.ChooseCardToPlay(ctx)
	s.logger.Debug("ai chose card",
		zap.String("session_id", s.id),
		zap.String("player_id", playerID),
		zap.String("card", chosen.String()),
		zap.Int("trick_number", ctx.TrickNumber),
	)
	return chosen, nil
}

// ChooseCardsToPass picks the three cards an AI seat passes this round.
func (s *Session) ChooseCardsToPass(state game.GameState, playerID string) ([]card.Card, error) {
	seat := state.PlayerIndex(playerID)
	if seat < 0 {
		return nil, game.ErrPlayerNotFound
	}
	strategy, err := s.strategyFor(state, seat)
	if err != nil {
		return nil, err
	}
	picks := strategy.ChooseCardsToPass(NewPassContext(state, seat))
	s.logger.Debug("ai chose pass",
		zap.String("session_id", s.id),
		zap.String("player_id", playerID),
		zap.Int("cards", len(picks)),
	)
	return picks, nil
}

// NotifyTrickComplete broadcasts the state's last completed trick to every
// cached strategy that keeps trick memory and still sits at the table.
func (s *Session) NotifyTrickComplete(state game.GameState) {
	if len(state.LastCompletedTrick) == 0 {
		return
	}
	trickNumber := state.CurrentTrickNumber - 1

	s.mu.Lock()
	defer s.mu.Unlock()
	for playerID, strategy := range s.strategies {
		observer, ok := strategy.(TrickObserver)
		if !ok || state.PlayerIndex(playerID) < 0 {
			continue
		}
		observer.OnTrickComplete(state.LastCompletedTrick, state.LastTrickWinnerIndex, trickNumber)
	}
}

// ResetForNewRound tells every cached strategy with round-scoped state to
// start fresh. Aggressiveness bases survive; card memory does not.
func (s *Session) ResetForNewRound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, strategy := range s.strategies {
		if observer, ok := strategy.(RoundObserver); ok {
			observer.OnRoundStart()
		}
	}
}

// Clear releases every cached instance. Call it when the game ends.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategies = make(map[string]Strategy)
	s.logger.Debug("ai session cleared", zap.String("session_id", s.id))
}

// PassChooser adapts the session to the passing subsystem's injection
// point.
func (s *Session) PassChooser(state game.GameState) game.PassChooser {
	return func(playerIndex int, hand []card.Card) []card.Card {
		picks, err := s.ChooseCardsToPass(state, state.Players[playerIndex].ID)
		if err != nil {
			// Unknown difficulty or seat; fall back to the front of the
			// hand so the submission still validates.
			s.logger.Warn("ai pass fallback",
				zap.String("session_id", s.id),
				zap.Int("player_index", playerIndex),
				zap.Error(err),
			)
			return append([]card.Card(nil), hand[:game.PassCount]...)
		}
		return picks
	}
}

// strategyFor resolves (or lazily builds) the strategy for a seat. The
// difficulty set is closed: exactly easy, medium, and hard exist.
func (s *Session) strategyFor(state game.GameState, seat int) (Strategy, error) {
	player := state.Players[seat]

	s.mu.Lock()
	defer s.mu.Unlock()
	if strategy, ok := s.strategies[player.ID]; ok {
		return strategy, nil
	}

	var strategy Strategy
	switch player.Difficulty {
	case game.DifficultyEasy:
		strategy = NewEasyStrategy(s.rng)
	case game.DifficultyMedium:
		strategy = NewMediumStrategy(s.cfg.Weights)
	case game.DifficultyHard:
		seats := make(map[string]int, len(state.Players))
		for i, p := range state.Players {
			seats[p.ID] = i
		}
		strategy = NewHardStrategy(player.ID, seats, s.cfg, s.rng)
	default:
		return nil, fmt.Errorf("unknown AI difficulty %q for player %s", player.Difficulty, player.ID)
	}

	s.strategies[player.ID] = strategy
	s.logger.Info("ai strategy created",
		zap.String("session_id", s.id),
		zap.String("player_id", player.ID),
		zap.String("difficulty", string(player.Difficulty)),
	)
	return strategy, nil
}

// HardInstance returns the cached hard strategy for a player, for
// inspection and tests. The second return is false when none exists.
func (s *Session) HardInstance(playerID string) (*HardStrategy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hard, ok := s.strategies[playerID].(*HardStrategy)
	return hard, ok
}
