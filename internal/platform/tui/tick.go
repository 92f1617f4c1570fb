// Package tui runs a game inside Bubble Tea. It owns the frame loop, maps
// keys and pointer motion to game actions, and draws the HUD from game events.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the game by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one interval from now. The game's clock
// is its tick count, so a late tick slows play down instead of skipping.
func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return TickMsg(t) })
}
