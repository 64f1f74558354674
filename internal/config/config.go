package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full engine tuning surface. Every value has a default, so
// an embedding application only overrides what it cares about.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	AI      AIConfig      `mapstructure:"ai"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig tunes the rules-facing knobs.
type GameConfig struct {
	// ScoreLimit ends the game once any cumulative score reaches it.
	ScoreLimit int `mapstructure:"score_limit"`
	// PassCycle is the per-round rotation of pass directions, applied
	// cyclically starting at round 1. Valid entries: left, right, across,
	// none.
	PassCycle []string `mapstructure:"pass_cycle"`
}

// AIConfig tunes the decision subsystem.
type AIConfig struct {
	// MemoryWindow is how many recent tricks the hard AI remembers.
	MemoryWindow   int                  `mapstructure:"memory_window"`
	Aggressiveness AggressivenessConfig `mapstructure:"aggressiveness"`
	Weights        WeightsConfig        `mapstructure:"weights"`
}

// AggressivenessConfig is the tuning table for the hard AI's risk appetite.
// The base is drawn once per instance from [BaseMin, BaseMax]; the live
// adjustment moves it by up to AdjustmentClamp depending on score standing;
// every other field is linearly interpolated from the effective value.
type AggressivenessConfig struct {
	BaseMin         float64 `mapstructure:"base_min"`
	BaseMax         float64 `mapstructure:"base_max"`
	ScoreDivisor    float64 `mapstructure:"score_divisor"`
	AdjustmentClamp float64 `mapstructure:"adjustment_clamp"`

	MoonThresholdMin float64 `mapstructure:"moon_threshold_min"`
	MoonThresholdMax float64 `mapstructure:"moon_threshold_max"`

	DuckPreferenceMin float64 `mapstructure:"duck_preference_min"`
	DuckPreferenceMax float64 `mapstructure:"duck_preference_max"`

	RiskToleranceMin float64 `mapstructure:"risk_tolerance_min"`
	RiskToleranceMax float64 `mapstructure:"risk_tolerance_max"`

	HighCardDumpMax float64 `mapstructure:"high_card_dump_max"`

	BluffMin float64 `mapstructure:"bluff_min"`
	BluffMax float64 `mapstructure:"bluff_max"`

	LeaderTargetGapMin float64 `mapstructure:"leader_target_gap_min"`
	LeaderTargetGapMax float64 `mapstructure:"leader_target_gap_max"`

	LeaderTargetWeightMin float64 `mapstructure:"leader_target_weight_min"`
	LeaderTargetWeightMax float64 `mapstructure:"leader_target_weight_max"`
}

// WeightsConfig groups the situational scoring tables, one per decision
// phase.
type WeightsConfig struct {
	Pass   PassWeights   `mapstructure:"pass"`
	Lead   LeadWeights   `mapstructure:"lead"`
	Follow FollowWeights `mapstructure:"follow"`
	Dump   DumpWeights   `mapstructure:"dump"`
}

// PassWeights score candidates for the passing phase. Higher means more
// likely to be passed away.
type PassWeights struct {
	QueenOfSpades      float64 `mapstructure:"queen_of_spades"`
	AceOrKingOfSpades  float64 `mapstructure:"ace_or_king_of_spades"`
	ProtectedQueenKeep float64 `mapstructure:"protected_queen_keep"`
	HighCardPerRank    float64 `mapstructure:"high_card_per_rank"`
	HeartPerRank       float64 `mapstructure:"heart_per_rank"`
	ShortSuitBonus     float64 `mapstructure:"short_suit_bonus"`
}

// LeadWeights score candidates when opening a trick.
type LeadWeights struct {
	Base             float64 `mapstructure:"base"`
	LowRankBonus     float64 `mapstructure:"low_rank_bonus"`
	HeartLead        float64 `mapstructure:"heart_lead"`
	QueenHunterLead  float64 `mapstructure:"queen_hunter_lead"`
	QueenExposedLead float64 `mapstructure:"queen_exposed_lead"`
	OpponentVoidLead float64 `mapstructure:"opponent_void_lead"`
}

// FollowWeights score candidates when following the lead suit.
type FollowWeights struct {
	Base               float64 `mapstructure:"base"`
	DuckBonus          float64 `mapstructure:"duck_bonus"`
	WinPenaltyPerPoint float64 `mapstructure:"win_penalty_per_point"`
	CleanWinLate       float64 `mapstructure:"clean_win_late"`
	LastSeatCleanWin   float64 `mapstructure:"last_seat_clean_win"`
}

// DumpWeights score candidates when void in the lead suit.
type DumpWeights struct {
	Base            float64 `mapstructure:"base"`
	QueenOfSpades   float64 `mapstructure:"queen_of_spades"`
	HeartBase       float64 `mapstructure:"heart_base"`
	HeartPerRank    float64 `mapstructure:"heart_per_rank"`
	HighCardRelief  float64 `mapstructure:"high_card_relief"`
	MoonShooterFeed float64 `mapstructure:"moon_shooter_feed"`
	LeaderTarget    float64 `mapstructure:"leader_target"`
}

// LoggingConfig mirrors the zap setup knobs used by the CLI.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Unmarshal of pure defaults cannot fail.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration from a YAML file, layered over the defaults,
// with HEARTS_-prefixed environment variables taking precedence. An empty
// path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("HEARTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Game.ScoreLimit <= 0 {
		return fmt.Errorf("game.score_limit must be positive, got %d", c.Game.ScoreLimit)
	}
	if len(c.Game.PassCycle) == 0 {
		return fmt.Errorf("game.pass_cycle must not be empty")
	}
	for _, dir := range c.Game.PassCycle {
		switch dir {
		case "left", "right", "across", "none":
		default:
			return fmt.Errorf("game.pass_cycle contains unknown direction %q", dir)
		}
	}
	if c.AI.MemoryWindow <= 0 {
		return fmt.Errorf("ai.memory_window must be positive, got %d", c.AI.MemoryWindow)
	}
	a := c.AI.Aggressiveness
	if a.BaseMin > a.BaseMax {
		return fmt.Errorf("ai.aggressiveness.base_min %v exceeds base_max %v", a.BaseMin, a.BaseMax)
	}
	if a.ScoreDivisor == 0 {
		return fmt.Errorf("ai.aggressiveness.score_divisor must not be zero")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.score_limit", 100)
	v.SetDefault("game.pass_cycle", []string{"left", "right", "across", "none"})

	v.SetDefault("ai.memory_window", 7)

	v.SetDefault("ai.aggressiveness.base_min", 0.3)
	v.SetDefault("ai.aggressiveness.base_max", 0.7)
	v.SetDefault("ai.aggressiveness.score_divisor", 60.0)
	v.SetDefault("ai.aggressiveness.adjustment_clamp", 0.3)
	v.SetDefault("ai.aggressiveness.moon_threshold_min", 0.55)
	v.SetDefault("ai.aggressiveness.moon_threshold_max", 0.9)
	v.SetDefault("ai.aggressiveness.duck_preference_min", 0.6)
	v.SetDefault("ai.aggressiveness.duck_preference_max", 1.4)
	v.SetDefault("ai.aggressiveness.risk_tolerance_min", 0.6)
	v.SetDefault("ai.aggressiveness.risk_tolerance_max", 1.5)
	v.SetDefault("ai.aggressiveness.high_card_dump_max", 12.0)
	v.SetDefault("ai.aggressiveness.bluff_min", 0.0)
	v.SetDefault("ai.aggressiveness.bluff_max", 0.12)
	v.SetDefault("ai.aggressiveness.leader_target_gap_min", 10.0)
	v.SetDefault("ai.aggressiveness.leader_target_gap_max", 35.0)
	v.SetDefault("ai.aggressiveness.leader_target_weight_min", 4.0)
	v.SetDefault("ai.aggressiveness.leader_target_weight_max", 18.0)

	v.SetDefault("ai.weights.pass.queen_of_spades", 50.0)
	v.SetDefault("ai.weights.pass.ace_or_king_of_spades", 35.0)
	v.SetDefault("ai.weights.pass.protected_queen_keep", -30.0)
	v.SetDefault("ai.weights.pass.high_card_per_rank", 3.0)
	v.SetDefault("ai.weights.pass.heart_per_rank", 1.5)
	v.SetDefault("ai.weights.pass.short_suit_bonus", 12.0)

	v.SetDefault("ai.weights.lead.base", 50.0)
	v.SetDefault("ai.weights.lead.low_rank_bonus", 2.5)
	v.SetDefault("ai.weights.lead.heart_lead", -15.0)
	v.SetDefault("ai.weights.lead.queen_hunter_lead", 20.0)
	v.SetDefault("ai.weights.lead.queen_exposed_lead", -35.0)
	v.SetDefault("ai.weights.lead.opponent_void_lead", -12.0)

	v.SetDefault("ai.weights.follow.base", 50.0)
	v.SetDefault("ai.weights.follow.duck_bonus", 30.0)
	v.SetDefault("ai.weights.follow.win_penalty_per_point", -6.0)
	v.SetDefault("ai.weights.follow.clean_win_late", 10.0)
	v.SetDefault("ai.weights.follow.last_seat_clean_win", 8.0)

	v.SetDefault("ai.weights.dump.base", 50.0)
	v.SetDefault("ai.weights.dump.queen_of_spades", 45.0)
	v.SetDefault("ai.weights.dump.heart_base", 15.0)
	v.SetDefault("ai.weights.dump.heart_per_rank", 2.0)
	v.SetDefault("ai.weights.dump.high_card_relief", 1.5)
	v.SetDefault("ai.weights.dump.moon_shooter_feed", -40.0)
	v.SetDefault("ai.weights.dump.leader_target", 15.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
}
