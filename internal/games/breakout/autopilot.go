package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Autopilot defaults
const (
	DefaultAutopilotSkill   = 0.85 // Fraction of MaxStep the paddle may move per tick
	DefaultAutopilotMaxStep = 0.4  // World units per tick at full skill
)

// Autopilot plays the game headlessly by steering the pointer under the ball.
// It aims slightly off-center so the ball does not bounce straight up forever.
type Autopilot struct {
	Skill   float64
	MaxStep float64

	rng    *SimpleRNG
	offset float64
	target float64
}

// NewAutopilot creates an autopilot with its own deterministic RNG.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{
		Skill:   DefaultAutopilotSkill,
		MaxStep: DefaultAutopilotMaxStep,
		rng:     NewSimpleRNG(seed ^ 0x5DEECE66D),
	}
}

// Next returns the input for the upcoming tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	s := g.Session()

	if s.GameOver() {
		in.Set(core.ActionConfirm)
		return in
	}

	ball := s.Ball()
	paddle := s.Paddle()
	a.target = paddle.Pos.X()

	if !s.BallInPlay() {
		a.offset = (a.rng.Float64()*2 - 1) * paddle.HalfWidth() * 0.6
		in.Set(core.ActionLaunch)
		return in
	}

	// Only chase a descending ball
	if ball.Vel.Y() < 0 {
		diff := ball.Pos.X() - a.offset - a.target
		step := a.MaxStep * a.Skill
		if math.Abs(diff) > step {
			diff = math.Copysign(step, diff)
		}
		a.target += diff
	}

	in.SetPointer(g.Viewport().PointerX(a.target))
	return in
}
