package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/registry"
)

// ErrNoTerminal is returned by Run when stdout is not an interactive terminal.
var ErrNoTerminal = errors.New("tui: stdout is not a terminal")

// Rows reserved around the playfield: HUD on top, help at the bottom.
const chromeRows = 2

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame *core.InputFrame
	gameState  core.GameState
	hud        *HUD
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Normalize(time.Now)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := core.NewInputFrame()
	hud := NewHUD()
	h := help.New()
	h.ShowAll = false

	cfg.ScreenH = max(cfg.ScreenH-chromeRows, 1)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: &frame,
		hud:        &hud,
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"session", m.sessionID(),
		"seed", m.config.Seed,
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)

	// Start the tick loop
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.screen.Width(), m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "session", m.sessionID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize recomputes the playfield size. The session survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-chromeRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	m.logger.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.inputFrame.Empty() {
		m.logger.Debug("input", "frame", m.inputFrame.String())
	}
	result := m.game.Step(*m.inputFrame)
	m.gameState = result.State

	m.hud.Apply(result.Events)
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// logEvents records the milestones of a session.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelChanged:
			if e.Value > 1 {
				m.logger.Info("level up", "session", m.sessionID(), "level", e.Value)
			}
		case core.EventGameOver:
			m.logger.Info("game over", "session", m.sessionID(), "final_score", e.Value)
		case core.EventPowerUpCaught:
			m.logger.Info("power-up caught", "session", m.sessionID(), "kind", e.Text, "id", e.ID)
		case core.EventReset:
			m.logger.Debug("session reset", "session", m.sessionID())
		default:
			m.logger.Debug(e.Kind.String(), "session", m.sessionID(), "value", e.Value, "id", e.ID)
		}
	}
}

func (m Model) sessionID() string {
	return registry.SessionID(m.game)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.screen.Width()),
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keyMapper.Keys())),
	)
}

// Run starts the Bubble Tea program with the given game. It fails with
// ErrNoTerminal when there is no terminal to draw on.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //#nosec G115 -- file descriptors fit in int
		return fmt.Errorf("tui: cannot start %s: %w", game.ID(), ErrNoTerminal)
	}

	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion steers the paddle
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
