package breakout

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// StatusNone is the power-up status shown when no effect is active.
const StatusNone = "None"

// PowerUpKind tags a pickup and selects its effect.
type PowerUpKind int

const (
	PowerUpPaddleSize PowerUpKind = iota // Temporarily widen the paddle
)

// String returns the kind's tag.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpPaddleSize:
		return "paddle-size"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a pickup of this kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpPaddleSize:
		return '◆'
	default:
		return '?'
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	ID   int
	Kind PowerUpKind
	Pos  mgl64.Vec3 // Center
	Size float64    // Edge length of the pickup cube
}

// Bounds returns the pickup's bounding box.
func (p PowerUp) Bounds() core.Box {
	return core.BoxFromCenter(p.Pos, mgl64.Vec3{p.Size, p.Size, p.Size})
}

// Fall moves the pickup down by step.
func (p *PowerUp) Fall(step float64) {
	p.Pos[1] -= step
}

// EffectSpec describes what catching a pickup of some kind does.
// Apply runs on every catch; Revert runs once when the effect expires.
type EffectSpec struct {
	Label    string        // Status text while active
	Duration time.Duration // Simulated time the effect lasts
	Apply    func(s *Session)
	Revert   func(s *Session)
}

// DefaultEffects returns the effect table for the given power-up settings.
func DefaultEffects(cfg config.BreakoutPowerUps) map[PowerUpKind]EffectSpec {
	bonus := cfg.PaddleScaleBonus
	return map[PowerUpKind]EffectSpec{
		PowerUpPaddleSize: {
			Label:    "Bigger Paddle!",
			Duration: cfg.Duration,
			Apply: func(s *Session) {
				s.paddle.Scale = 1 + bonus
			},
			Revert: func(s *Session) {
				s.paddle.Scale = 1
			},
		},
	}
}

// ActiveEffect is an effect currently applied to the session.
// ExpiresAt is measured on the session's simulated clock.
type ActiveEffect struct {
	Kind      PowerUpKind
	ExpiresAt time.Duration
}

// Remaining returns how long the effect still lasts at the given time.
func (e ActiveEffect) Remaining(now time.Duration) time.Duration {
	if e.ExpiresAt <= now {
		return 0
	}
	return e.ExpiresAt - now
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit Linear Congruential Generator so its state fits in a snapshot.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
