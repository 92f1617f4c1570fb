// brickbreak is a terminal brick breaker.
//
// Usage:
//
//	brickbreak play              - Play in the terminal
//	brickbreak simulate          - Run a headless autopilot session and print a summary
//	brickbreak list              - List available games
//	brickbreak config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom breakout YAML config
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Write logs to a file
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreak",
	Short: "Brick Breaker - bounce a ball, clear the bricks",
	Long: `Brick Breaker is a terminal take on the classic paddle and bricks game.

Steer the paddle with the mouse or the arrow keys, launch the ball with a
click or Space, and clear the 5x3 grid to advance a level. Each level is
faster than the last. Broken bricks sometimes drop a power-up that widens
the paddle for a while.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless autopilot session
  list      - Show all available games
  config    - Print the effective configuration

Examples:
  brickbreak play
  brickbreak play --difficulty hard --seed 42
  brickbreak simulate --ticks 36000
  brickbreak config > ~/.brickbreak/configs/breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreak",
		Level:           level,
	})
	return logger, nil
}

// openLogger returns a logger for --log-file, or one writing to fallback when
// no file is set. The returned close function is always safe to call.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := newLogger(w)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}

// resolveConfig applies --config and --difficulty and returns the effective
// breakout configuration with the preset it was built from. An explicit
// config that cannot be loaded is an error.
func resolveConfig() (config.BreakoutConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, "", err
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(preset)
	cfg, err := breakout.LoadConfig()
	if err != nil {
		return config.BreakoutConfig{}, "", err
	}
	return cfg, preset, nil
}
