package breakout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Ball is the single ball in play. Z is always 0.
type Ball struct {
	Pos    mgl64.Vec3 // Center
	Vel    mgl64.Vec3 // World units per tick
	Radius float64
}

// Bounds returns the ball's bounding box (the sphere's enclosing cube).
func (b Ball) Bounds() core.Box {
	d := 2 * b.Radius
	return core.BoxFromCenter(b.Pos, mgl64.Vec3{d, d, d})
}

// Integrate advances the ball by one explicit Euler step.
func (b *Ball) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel[0] = -b.Vel[0]
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel[1] = -b.Vel[1]
}

// Speed returns the magnitude of the velocity.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// Paddle is the player's paddle. Pos is its center; Y never changes.
type Paddle struct {
	Pos    mgl64.Vec3
	Width  float64 // Unscaled width
	Height float64
	Depth  float64
	Scale  float64 // Horizontal scale, 1 unless an effect is active
}

// HalfWidth returns half of the scaled width.
func (p Paddle) HalfWidth() float64 {
	return p.Width * p.Scale / 2
}

// Bounds returns the paddle's scaled bounding box.
func (p Paddle) Bounds() core.Box {
	return core.BoxFromCenter(p.Pos, mgl64.Vec3{p.Width * p.Scale, p.Height, p.Depth})
}

// Deflect sends the ball back up and steers it by where it hit the paddle.
// Vertical velocity becomes strictly positive whatever its incoming sign;
// a ball with no vertical speed gets fallbackVY. Horizontal velocity is
// proportional to the offset from the paddle center, reaching influence at
// the paddle edge.
func Deflect(ball *Ball, paddle *Paddle, influence, fallbackVY float64) {
	vy := math.Abs(ball.Vel.Y())
	if vy == 0 {
		vy = math.Abs(fallbackVY)
	}
	ball.Vel[1] = vy

	half := paddle.HalfWidth()
	if half <= 0 {
		ball.Vel[0] = 0
		return
	}
	ball.Vel[0] = (ball.Pos.X() - paddle.Pos.X()) / half * influence
}

// CheckBounds reports the boundaries the ball is past this tick.
// Side and ceiling may both be reported in a corner; floor is reported alone.
func CheckBounds(ball *Ball, halfWidth, ceiling, floor float64) (side, top, lost bool) {
	x, y := ball.Pos.X(), ball.Pos.Y()
	if y < floor {
		return false, false, true
	}
	side = x > halfWidth || x < -halfWidth
	top = y > ceiling
	return side, top, false
}
