package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
	"github.com/vovakirdan/brickbreak/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/brickbreak/internal/games/breakout"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to breakout.

Controls:
  Mouse          - Steer the paddle
  Click/Space    - Launch the ball, dismiss the game over notice
  Left/Right A/D - Nudge the paddle
  Enter          - Dismiss the game over notice
  P/Esc          - Pause
  R              - Restart
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower ball, more power-ups, gentler level speed-up
  normal - Default tuning
  hard   - Faster ball, fewer power-ups, steeper level speed-up

Logs are discarded unless --log-file is set, so they never draw over the game.

Examples:
  brickbreak play
  brickbreak play --difficulty easy
  brickbreak play --config ./my-breakout.yaml --log-file /tmp/brickbreak.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := registry.DefaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'brickbreak list' to see available games", gameID)
	}

	// Surface config errors before the terminal switches to the alt screen
	if _, _, err := resolveConfig(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- file descriptors fit in int
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("could not run game", "game", gameID, "error", err)
		if errors.Is(err, tui.ErrNoTerminal) {
			return fmt.Errorf("%w (use 'brickbreak simulate' for headless runs)", err)
		}
		return err
	}
	return nil
}
