package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestHUDFollowsEvents(t *testing.T) {
	hud := NewHUD()
	assert.Equal(t, HUD{Score: "0", Level: "1", Status: "None"}, hud)

	hud.Apply([]core.Event{
		{Kind: core.EventBrickDestroyed, ID: 7},
		{Kind: core.EventScoreChanged, Value: 10},
		{Kind: core.EventPowerUpCaught, ID: 16, Text: "paddle-size"},
		{Kind: core.EventStatusChanged, Text: "Bigger Paddle!"},
	})
	assert.Equal(t, "10", hud.Score)
	assert.Equal(t, "1", hud.Level)
	assert.Equal(t, "Bigger Paddle!", hud.Status)

	hud.Apply([]core.Event{
		{Kind: core.EventScoreChanged, Value: 150},
		{Kind: core.EventLevelChanged, Value: 2},
	})
	assert.Equal(t, "150", hud.Score)
	assert.Equal(t, "2", hud.Level)

	// Events it does not display leave it alone
	hud.Apply([]core.Event{{Kind: core.EventGameOver, Value: 150}})
	assert.Equal(t, "150", hud.Score)

	hud.Apply([]core.Event{
		{Kind: core.EventReset},
		{Kind: core.EventScoreChanged, Value: 0},
		{Kind: core.EventLevelChanged, Value: 1},
		{Kind: core.EventStatusChanged, Text: "None"},
	})
	assert.Equal(t, NewHUD(), hud)
}

func TestHUDView(t *testing.T) {
	hud := HUD{Score: "30", Level: "2", Status: "Bigger Paddle!"}

	view := hud.View(80)

	for _, want := range []string{"Score: ", "30", "Level: ", "2", "Power-up: ", "Bigger Paddle!"} {
		assert.True(t, strings.Contains(view, want), "HUD should contain %q", want)
	}
	assert.LessOrEqual(t, lipgloss.Width(view), 80)
}
