package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openhearts/hearts-engine-go/internal/ai"
	"github.com/openhearts/hearts-engine-go/internal/config"
	"github.com/openhearts/hearts-engine-go/internal/game"
	"github.com/openhearts/hearts-engine-go/internal/game/card"
)

var (
	configPath   = flag.String("config", "", "path to configuration file (defaults when empty)")
	seed         = flag.Int64("seed", 0, "random seed (0 = time-based)")
	games        = flag.Int("games", 1, "number of games to simulate")
	difficulties = flag.String("difficulties", "hard,medium,medium,easy", "comma-separated difficulty per seat")
	replayDir    = flag.String("replay-dir", "", "directory to save replays to (disabled when empty)")
	version      = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	logger.Info("starting hearts simulation",
		zap.String("version", version),
		zap.Int64("seed", seedValue),
		zap.Int("games", *games),
		zap.String("difficulties", *difficulties),
	)

	tiers, err := parseDifficulties(*difficulties)
	if err != nil {
		logger.Fatal("invalid difficulties flag", zap.Error(err))
	}

	for g := 0; g < *games; g++ {
		if err := runGame(cfg, tiers, rng, logger.With(zap.Int("game", g+1))); err != nil {
			logger.Fatal("simulation failed", zap.Error(err))
		}
	}
}

func runGame(cfg *config.Config, tiers []game.Difficulty, rng *rand.Rand, logger *zap.Logger) error {
	players := make([]game.Player, game.PlayerCount)
	for i := range players {
		players[i] = game.Player{
			ID:         fmt.Sprintf("ai-%d", i),
			Name:       fmt.Sprintf("Bot %d", i+1),
			IsAI:       true,
			Difficulty: tiers[i],
		}
	}

	state := game.NewGameState(players, cfg.Game.ScoreLimit)
	state.PassCycle = passCycle(cfg.Game.PassCycle)
	session := ai.NewSession(cfg.AI, logger, rng)
	defer session.Clear()

	var replay *game.Replay
	if *replayDir != "" {
		replay = game.NewReplay("", logger)
	}

	state = game.StartRoundWithPassingPhase(state, card.Deal(card.Shuffle(card.NewDeck(), rng)))
	session.ResetForNewRound()

	for !state.IsGameOver {
		var err error
		if state, err = playRound(state, session, replay, logger); err != nil {
			return err
		}
		logger.Info("round complete",
			zap.Int("round", state.RoundNumber),
			zap.Ints("round_scores", state.RoundScores),
			zap.Ints("scores", state.Scores),
			zap.Bool("shot_the_moon", state.ShotTheMoon),
		)
		if state.IsGameOver {
			break
		}
		state = game.PrepareNewRound(state, card.Deal(card.Shuffle(card.NewDeck(), rng)))
		session.ResetForNewRound()
	}

	logger.Info("game over",
		zap.Int("rounds", state.RoundNumber),
		zap.Ints("final_scores", state.Scores),
		zap.String("winner", state.Players[state.WinnerIndex].Name),
	)

	if replay != nil {
		if err := replay.SaveToFile(*replayDir); err != nil {
			return fmt.Errorf("failed to save replay: %w", err)
		}
	}
	return nil
}

func playRound(state game.GameState, session *ai.Session, replay *game.Replay, logger *zap.Logger) (game.GameState, error) {
	var err error
	if state.IsPassingPhase {
		state, err = game.ProcessAIPassesAndFinalize(state, session.PassChooser(state), game.ExecutePassPhase)
		if err != nil {
			return state, fmt.Errorf("passing phase failed: %w", err)
		}
	}
	if state.IsRevealPhase {
		state = game.CompleteRevealPhase(state)
	}
	record(replay, state)

	for !state.IsRoundComplete && !state.IsGameOver {
		playerID := state.Players[state.CurrentPlayerIndex].ID
		chosen, err := session.ChooseCard(state, playerID)
		if err != nil {
			return state, fmt.Errorf("ai decision failed for %s: %w", playerID, err)
		}
		state, err = game.PlayCard(state, playerID, chosen)
		if err != nil {
			return state, fmt.Errorf("ai played an illegal card %s: %w", chosen, err)
		}
		if len(state.CurrentTrick) == 0 && len(state.LastCompletedTrick) > 0 {
			session.NotifyTrickComplete(state)
			logger.Debug("trick complete",
				zap.String("trick", state.LastCompletedTrick.String()),
				zap.Int("winner", state.LastTrickWinnerIndex),
			)
			record(replay, state)
		}
	}
	return state, nil
}

func record(replay *game.Replay, state game.GameState) {
	if replay != nil {
		replay.Record(state)
	}
}

func parseDifficulties(value string) ([]game.Difficulty, error) {
	parts := strings.Split(value, ",")
	if len(parts) != game.PlayerCount {
		return nil, fmt.Errorf("need %d difficulties, got %d", game.PlayerCount, len(parts))
	}
	tiers := make([]game.Difficulty, len(parts))
	for i, part := range parts {
		switch d := game.Difficulty(strings.TrimSpace(part)); d {
		case game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard:
			tiers[i] = d
		default:
			return nil, fmt.Errorf("unknown difficulty %q", part)
		}
	}
	return tiers, nil
}

func passCycle(directions []string) []game.PassDirection {
	cycle := make([]game.PassDirection, len(directions))
	for i, d := range directions {
		cycle[i] = game.PassDirection(d)
	}
	return cycle
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
