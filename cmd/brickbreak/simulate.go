package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/games/breakout"
)

var (
	flagTicks    int
	flagSnapshot bool
	flagSkill    float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot session",
	Long: `Runs the simulation without a terminal, steering the paddle with an
autopilot, and prints a YAML summary: scores of finished games, levels
reached, bricks destroyed and power-up counts. Game over notices are
acknowledged automatically.

Runs with the same --seed, --config and --difficulty produce the same
summary, including the state hash.

Examples:
  brickbreak simulate
  brickbreak simulate --ticks 216000 --seed 7
  brickbreak simulate --difficulty hard --skill 0.6 --snapshot`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Include the final session snapshot")
	simulateCmd.Flags().Float64Var(&flagSkill, "skill", breakout.DefaultAutopilotSkill, "Autopilot skill in (0, 1]")
}

// SimulationSummary is the YAML report printed by simulate.
type SimulationSummary struct {
	Session    string        `yaml:"session"`
	Seed       int64         `yaml:"seed"`
	Difficulty string        `yaml:"difficulty"`
	Ticks      int           `yaml:"ticks"`
	Simulated  time.Duration `yaml:"simulated"`

	Games       int   `yaml:"games_finished"`
	FinalScores []int `yaml:"final_scores,flow"`
	BestScore   int   `yaml:"best_score"`
	MaxLevel    int   `yaml:"max_level"`

	BricksDestroyed  int     `yaml:"bricks_destroyed"`
	PowerUpsSpawned  int     `yaml:"powerups_spawned"`
	PowerUpsCaught   int     `yaml:"powerups_caught"`
	PowerUpsMissed   int     `yaml:"powerups_missed"`
	SpawnRate        float64 `yaml:"spawn_rate"`
	ConfiguredChance float64 `yaml:"configured_chance"`

	Current   core.GameState     `yaml:"current"`
	BallSpeed float64            `yaml:"ball_speed"` // Per tick, at the end of the run
	Hash      string             `yaml:"state_hash"`
	Snapshot  *breakout.Snapshot `yaml:"snapshot,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagSkill <= 0 || flagSkill > 1 {
		return fmt.Errorf("--skill must be in (0, 1], got %v", flagSkill)
	}

	cfg, preset, err := resolveConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	runtime := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}.Normalize(time.Now)
	seed := runtime.Seed

	game := breakout.New()
	game.ResetWith(runtime, cfg)
	pilot := breakout.NewAutopilot(seed)
	pilot.Skill = flagSkill

	summary := SimulationSummary{
		Session:          game.SessionID(),
		Seed:             seed,
		Difficulty:       string(preset),
		Ticks:            flagTicks,
		Simulated:        time.Duration(flagTicks) * runtime.TickInterval(),
		MaxLevel:         1,
		FinalScores:      []int{},
		ConfiguredChance: cfg.PowerUps.Chance,
	}

	logger.Info("simulation started", "session", summary.Session, "seed", seed, "ticks", flagTicks)

	for rep := 0; rep < flagTicks; rep++ {
		result := game.Step(pilot.Next(game))
		for _, e := range result.Events {
			switch e.Kind {
			case core.EventBrickDestroyed:
				summary.BricksDestroyed++
			case core.EventPowerUpSpawned:
				summary.PowerUpsSpawned++
			case core.EventPowerUpCaught:
				summary.PowerUpsCaught++
				logger.Debug("power-up caught", "session", summary.Session, "kind", e.Text)
			case core.EventPowerUpExpired:
				summary.PowerUpsMissed++
			case core.EventLevelChanged:
				if e.Value > summary.MaxLevel {
					summary.MaxLevel = e.Value
					logger.Info("level up", "session", summary.Session, "level", e.Value)
				}
			case core.EventGameOver:
				summary.Games++
				summary.FinalScores = append(summary.FinalScores, e.Value)
				summary.BestScore = max(summary.BestScore, e.Value)
				logger.Info("game over", "session", summary.Session, "final_score", e.Value)
			}
		}
	}

	if summary.BricksDestroyed > 0 {
		summary.SpawnRate = float64(summary.PowerUpsSpawned) / float64(summary.BricksDestroyed)
	}
	summary.Current = game.State()
	summary.BallSpeed = game.Session().Ball().Speed()
	summary.BestScore = max(summary.BestScore, summary.Current.Score)

	snap := game.Session().Snapshot()
	summary.Hash = fmt.Sprintf("%016x", snap.Hash())
	if flagSnapshot {
		summary.Snapshot = &snap
	}

	logger.Info("simulation finished",
		"session", summary.Session,
		"games", summary.Games,
		"best_score", summary.BestScore,
		"hash", summary.Hash,
	)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}
