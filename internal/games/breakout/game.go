package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '═'
	BallChar   = '●'
	WallChar   = '│'
	CeilChar   = '─'
	BrickChar  = '█'
)

// Minimum playable screen size
const (
	MinScreenW = 30
	MinScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the configuration the next Reset will use.
func LoadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	if err := cfg.Validate(); err != nil {
		return config.BreakoutConfig{}, err
	}
	return cfg, nil
}

// Game adapts a Session to the registry.Game interface: it turns input frames
// into session calls and draws the session into a screen buffer.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	view    Viewport
	paused  bool

	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// Reset starts a fresh session. A config that fails to load falls back to
// the defaults; the CLI validates explicit configs before getting here.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.paused = false
	g.session = NewSession(cfg, runtime.Seed, runtime.TickRate)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the viewport for a new screen size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
	g.view = NewViewport(g.cfg.Playfield, w, h)
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// SessionID identifies the running session in logs.
func (g *Game) SessionID() string {
	if g.session == nil {
		return ""
	}
	return g.session.ID()
}

// Viewport returns the current world-to-cell mapping.
func (g *Game) Viewport() Viewport {
	return g.view
}

// Step applies one frame of input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	s := g.session

	if in.Has(core.ActionRestart) {
		g.paused = false
		events = append(events, s.ResetGame()...)
		return core.StepResult{State: g.State(), Events: events}
	}

	if s.GameOver() {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionLaunch) {
			events = append(events, s.Acknowledge()...)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.HasPointer {
		s.MovePaddleTo(g.view.WorldX(in.Pointer))
	}
	if in.Has(core.ActionLeft) {
		s.NudgePaddle(-g.cfg.Paddle.KeyStep)
	}
	if in.Has(core.ActionRight) {
		s.NudgePaddle(g.cfg.Paddle.KeyStep)
	}
	if in.Has(core.ActionLaunch) {
		events = append(events, s.Launch()...)
	}

	events = append(events, s.Tick()...)
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.view.W || dst.Height() != g.view.H {
		g.Resize(dst.Width(), dst.Height())
	}

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderPickups(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderWalls draws the side walls and the ceiling.
func (g *Game) renderWalls(dst *core.Screen) {
	pf := g.cfg.Playfield
	left := core.Clamp(g.view.CellX(-pf.HalfWidth-0.25), 0, dst.Width()-1)
	right := core.Clamp(g.view.CellX(pf.HalfWidth+0.25), 0, dst.Width()-1)
	top := core.Clamp(g.view.CellY(pf.Ceiling+0.25), 0, dst.Height()-1)

	dst.DrawHLine(left, top, right-left+1, CeilChar, core.ColorGray)
	dst.DrawVLine(left, top+1, dst.Height()-top-1, WallChar, core.ColorGray)
	dst.DrawVLine(right, top+1, dst.Height()-top-1, WallChar, core.ColorGray)
}

// renderBricks draws the remaining bricks in their row colors.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.session.Bricks() {
		r := g.view.Span(b.Bounds())
		// Leave a one-cell gap so neighbours stay distinguishable
		if r.W > 2 {
			r.W--
		}
		dst.FillRect(r, BrickChar, b.Color)
	}
}

// renderPickups draws falling power-ups.
func (g *Game) renderPickups(dst *core.Screen) {
	for _, p := range g.session.PowerUps() {
		x, y := g.view.Cell(p.Pos.X(), p.Pos.Y())
		dst.SetColored(x, y, p.Kind.Glyph(), core.ColorYellow)
	}
}

// renderPaddle draws the player's paddle at its current scale.
func (g *Game) renderPaddle(dst *core.Screen) {
	paddle := g.session.Paddle()
	r := g.view.Span(paddle.Bounds())
	color := core.ColorGreen
	if paddle.Scale > 1 {
		color = core.ColorBrightGreen
	}
	dst.DrawHLine(r.X, r.Y, r.W, PaddleChar, color)
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	ball := g.session.Ball()
	x, y := g.view.Cell(ball.Pos.X(), ball.Pos.Y())
	dst.SetColored(x, y, BallChar, core.ColorRed)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.session
	switch {
	case s.GameOver():
		subtitle := fmt.Sprintf("Final Score: %d", s.FinalScore())
		dst.DrawMessageBox("GAME OVER", subtitle, "click or press Enter")
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case !s.BallInPlay():
		dst.DrawTextCentered(dst.Height()-1, "Click or press SPACE to launch")
	case len(s.ActiveEffects()) > 0:
		secs := int(math.Ceil(s.StatusRemaining().Seconds()))
		dst.DrawTextCentered(dst.Height()-1, fmt.Sprintf("%s %ds", s.PowerUpStatus(), secs))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		GameOver: s.GameOver(),
		Paused:   g.paused,
		InPlay:   s.BallInPlay(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
