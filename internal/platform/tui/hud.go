package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// HUD holds the three display strings shown above the playfield.
// It only changes in response to game events.
type HUD struct {
	Score  string
	Level  string
	Status string
}

// NewHUD returns the HUD of a fresh session.
func NewHUD() HUD {
	return HUD{Score: "0", Level: "1", Status: "None"}
}

// Apply updates the HUD from a batch of events.
func (h *HUD) Apply(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventScoreChanged:
			h.Score = strconv.Itoa(e.Value)
		case core.EventLevelChanged:
			h.Level = strconv.Itoa(e.Value)
		case core.EventStatusChanged:
			h.Status = e.Text
		}
	}
}

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudPowerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// View renders the HUD as a single line of the given width.
func (h HUD) View(width int) string {
	status := hudValueStyle.Render(h.Status)
	if h.Status != "None" {
		status = hudPowerStyle.Render(h.Status)
	}

	left := hudLabelStyle.Render("Score: ") + hudValueStyle.Render(h.Score)
	mid := hudLabelStyle.Render("Level: ") + hudValueStyle.Render(h.Level)
	right := hudLabelStyle.Render("Power-up: ") + status

	used := lipgloss.Width(left) + lipgloss.Width(mid) + lipgloss.Width(right)
	gap := (width - used - 2) / 2
	if gap < 2 {
		gap = 2
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	line := lipgloss.JoinHorizontal(lipgloss.Top, " ", left, spacer, mid, spacer, right)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
