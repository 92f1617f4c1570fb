package breakout

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

const epsilon = 1e-9

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.DefaultBreakoutConfig(), 42, 60)
}

// throw puts the ball in play at pos with velocity vel.
func throw(s *Session, pos, vel mgl64.Vec3) {
	s.ball.Pos = pos
	s.ball.Vel = vel
	s.ballInPlay = true
}

// hitTopBrick aims the ball straight at the newest brick and ticks once.
func hitTopBrick(s *Session) []core.Event {
	b := s.bricks[len(s.bricks)-1]
	throw(s, mgl64.Vec3{b.Pos.X(), b.Pos.Y() - 0.9, 0}, mgl64.Vec3{0, 0.15, 0})
	return s.Tick()
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.False(t, s.GameOver())
	assert.False(t, s.BallInPlay())
	assert.Len(t, s.Bricks(), 15)
	assert.Empty(t, s.PowerUps())
	assert.Equal(t, "0", s.ScoreText())
	assert.Equal(t, "1", s.LevelText())
	assert.Equal(t, StatusNone, s.PowerUpStatus())
	assert.NotEmpty(t, s.ID())

	ball := s.Ball()
	assert.True(t, ball.Pos.ApproxEqual(mgl64.Vec3{0, -7, 0}), "ball parked at %v", ball.Pos)
	assert.True(t, ball.Vel.ApproxEqual(mgl64.Vec3{0.15, 0.15, 0}), "launch velocity %v", ball.Vel)
}

func TestBallFrozenUntilLaunch(t *testing.T) {
	s := newTestSession(t)
	start := s.Ball().Pos

	for rep := 0; rep < 120; rep++ {
		s.Tick()
	}
	assert.Equal(t, start, s.Ball().Pos, "parked ball must not move")

	events := s.Launch()
	require.Equal(t, 1, countEvents(events, core.EventLaunched))
	assert.True(t, s.BallInPlay())

	s.Tick()
	assert.InDelta(t, 0.15, s.Ball().Pos.X(), epsilon)
	assert.InDelta(t, -6.85, s.Ball().Pos.Y(), epsilon)

	// Launch while in play is a no-op
	assert.Empty(t, s.Launch())
}

func TestParkedBallFollowsPaddle(t *testing.T) {
	s := newTestSession(t)

	s.MovePaddleTo(3)
	assert.InDelta(t, 3, s.Paddle().Pos.X(), epsilon)
	assert.InDelta(t, 3, s.Ball().Pos.X(), epsilon)

	s.MovePaddleTo(20)
	assert.InDelta(t, 8, s.Paddle().Pos.X(), epsilon, "paddle clamped to the right limit")

	s.MovePaddleTo(-20)
	assert.InDelta(t, -8, s.Paddle().Pos.X(), epsilon, "paddle clamped to the left limit")

	s.NudgePaddle(0.5)
	assert.InDelta(t, -7.5, s.Paddle().Pos.X(), epsilon)

	s.Launch()
	s.MovePaddleTo(0)
	assert.InDelta(t, -7.5, s.Ball().Pos.X(), epsilon, "ball in play ignores the paddle")
}

func TestPaddleHitCentered(t *testing.T) {
	s := newTestSession(t)
	throw(s, mgl64.Vec3{0, -7.6, 0}, mgl64.Vec3{0, -0.15, 0})

	s.Tick()

	ball := s.Ball()
	assert.InDelta(t, 0, ball.Vel.X(), epsilon)
	assert.InDelta(t, 0.15, ball.Vel.Y(), epsilon)
}

func TestPaddleHitSteering(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		wantVX float64
	}{
		{"left edge", -2.5, -0.2},
		{"left half", -1.25, -0.1},
		{"center", 0, 0},
		{"right half", 1.25, 0.1},
		{"right edge", 2.5, 0.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			throw(s, mgl64.Vec3{tc.offset, -7.6, 0}, mgl64.Vec3{0, -0.15, 0})

			s.Tick()

			assert.InDelta(t, tc.wantVX, s.Ball().Vel.X(), epsilon)
			assert.Greater(t, s.Ball().Vel.Y(), 0.0, "ball must leave the paddle upward")
		})
	}
}

func TestPaddleHitUsesScaledWidth(t *testing.T) {
	s := newTestSession(t)
	s.paddle.Scale = 1.5
	throw(s, mgl64.Vec3{3.75, -7.6, 0}, mgl64.Vec3{0, -0.15, 0})

	s.Tick()

	assert.InDelta(t, 0.2, s.Ball().Vel.X(), epsilon)
}

func TestPaddleHitVerticalAlwaysUp(t *testing.T) {
	// Ball moving upward while still overlapping keeps going up
	s := newTestSession(t)
	throw(s, mgl64.Vec3{0, -7.9, 0}, mgl64.Vec3{0.05, 0.15, 0})
	s.Tick()
	assert.Greater(t, s.Ball().Vel.Y(), 0.0)

	// Zero vertical speed falls back to the launch speed
	s = newTestSession(t)
	throw(s, mgl64.Vec3{0, -7.75, 0}, mgl64.Vec3{0.1, 0, 0})
	s.Tick()
	assert.InDelta(t, 0.15, s.Ball().Vel.Y(), epsilon)
}

func TestBrickHit(t *testing.T) {
	s := newTestSession(t)
	throw(s, mgl64.Vec3{0, 4.1, 0}, mgl64.Vec3{0, 0.15, 0})

	events := s.Tick()

	assert.Len(t, s.Bricks(), 14)
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, "10", s.ScoreText())
	assert.InDelta(t, -0.15, s.Ball().Vel.Y(), epsilon)
	require.Equal(t, 1, countEvents(events, core.EventBrickDestroyed))
	require.Equal(t, 1, countEvents(events, core.EventScoreChanged))

	for _, b := range s.Bricks() {
		assert.NotEqual(t, 7, b.ID, "brick at column 2, row 0 should be gone")
	}
}

func TestBrickHitOnePerTick(t *testing.T) {
	s := newTestSession(t)
	// Straddles column 1 and column 2 of the bottom row
	throw(s, mgl64.Vec3{-1.25, 4.1, 0}, mgl64.Vec3{0, 0.15, 0})

	events := s.Tick()

	assert.Len(t, s.Bricks(), 14, "only one brick per tick")
	assert.Equal(t, 10, s.Score())
	require.Equal(t, 1, countEvents(events, core.EventBrickDestroyed))

	var destroyed int
	for _, e := range events {
		if e.Kind == core.EventBrickDestroyed {
			destroyed = e.ID
		}
	}
	assert.Equal(t, 7, destroyed, "newest overlapping brick wins")
}

func TestWallAndCeilingBounce(t *testing.T) {
	s := newTestSession(t)
	throw(s, mgl64.Vec3{8.9, 0, 0}, mgl64.Vec3{0.15, 0.1, 0})
	s.Tick()
	assert.InDelta(t, -0.15, s.Ball().Vel.X(), epsilon)
	assert.InDelta(t, 0.1, s.Ball().Vel.Y(), epsilon)

	s = newTestSession(t)
	throw(s, mgl64.Vec3{-8, 8.9, 0}, mgl64.Vec3{0.05, 0.15, 0})
	s.Tick()
	assert.InDelta(t, 0.05, s.Ball().Vel.X(), epsilon)
	assert.InDelta(t, -0.15, s.Ball().Vel.Y(), epsilon)
}

func TestLevelUpOnLastBrick(t *testing.T) {
	s := newTestSession(t)

	var events []core.Event
	for rep := 0; rep < 15; rep++ {
		events = append(events, hitTopBrick(s)...)
	}

	assert.Equal(t, 150, s.Score())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, "2", s.LevelText())
	assert.Len(t, s.Bricks(), 15, "grid rebuilt")
	assert.False(t, s.BallInPlay())
	assert.InDelta(t, 1.2, s.SpeedFactor(), epsilon)
	require.Equal(t, 1, countEvents(events, core.EventLevelChanged))

	ball := s.Ball()
	assert.InDelta(t, s.Paddle().Pos.X(), ball.Pos.X(), epsilon)
	assert.InDelta(t, -7, ball.Pos.Y(), epsilon)
	assert.InDelta(t, 0.18, ball.Vel.X(), epsilon)
	assert.InDelta(t, 0.18, ball.Vel.Y(), epsilon)
}

func TestLevelSpeedCompounds(t *testing.T) {
	s := newTestSession(t)
	for rep := 0; rep < 30; rep++ {
		hitTopBrick(s)
	}

	assert.Equal(t, 3, s.Level())
	assert.InDelta(t, 1.44, s.SpeedFactor(), epsilon)
	assert.InDelta(t, 0.15*1.44, s.Ball().Vel.Y(), epsilon)
}

func TestPowerUpSpawnRate(t *testing.T) {
	s := newTestSession(t)
	const n = 1500

	spawned := 0
	for rep := 0; rep < n; rep++ {
		spawned += countEvents(hitTopBrick(s), core.EventPowerUpSpawned)
	}

	rate := float64(spawned) / n
	assert.InDelta(t, 0.2, rate, 0.05, "spawned %d of %d", spawned, n)
}

func TestPowerUpChanceBounds(t *testing.T) {
	for _, chance := range []float64{0, 1} {
		cfg := config.DefaultBreakoutConfig()
		cfg.PowerUps.Chance = chance
		s := NewSession(cfg, 7, 60)

		spawned := 0
		for rep := 0; rep < 15; rep++ {
			spawned += countEvents(hitTopBrick(s), core.EventPowerUpSpawned)
		}
		assert.Equal(t, int(chance*15), spawned, "chance %v", chance)
	}
}

func TestPowerUpSpawnsAtBrick(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.PowerUps.Chance = 1
	s := NewSession(cfg, 1, 60)

	target := s.Bricks()[len(s.Bricks())-1]
	pos := target.Pos
	hitTopBrick(s)

	require.Len(t, s.PowerUps(), 1)
	p := s.PowerUps()[0]
	assert.Equal(t, PowerUpPaddleSize, p.Kind)
	assert.InDelta(t, pos.X(), p.Pos.X(), epsilon)
	// Spawned after the fall step of the same tick
	assert.InDelta(t, pos.Y()-0.1, p.Pos.Y(), epsilon)
}

func TestPowerUpFallsOnlyInPlay(t *testing.T) {
	s := newTestSession(t)
	s.powerUps = append(s.powerUps, &PowerUp{ID: 99, Kind: PowerUpPaddleSize, Pos: mgl64.Vec3{5, 0, 0}, Size: 0.5})

	s.Tick()
	assert.InDelta(t, 0, s.PowerUps()[0].Pos.Y(), epsilon, "parked ball freezes pickups")

	throw(s, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{})
	s.Tick()
	assert.InDelta(t, -0.1, s.PowerUps()[0].Pos.Y(), epsilon)
}

func TestPowerUpMissedExpires(t *testing.T) {
	s := newTestSession(t)
	s.MovePaddleTo(-8)
	s.powerUps = append(s.powerUps, &PowerUp{ID: 99, Kind: PowerUpPaddleSize, Pos: mgl64.Vec3{5, -9.95, 0}, Size: 0.5})
	throw(s, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{})

	events := s.Tick()

	assert.Empty(t, s.PowerUps())
	assert.Equal(t, 1, countEvents(events, core.EventPowerUpExpired))
	assert.InDelta(t, 1.0, s.Paddle().Scale, epsilon, "missed pickup has no effect")
}

func TestPowerUpCatchAndExpiry(t *testing.T) {
	s := newTestSession(t)
	s.powerUps = append(s.powerUps, &PowerUp{ID: 99, Kind: PowerUpPaddleSize, Pos: mgl64.Vec3{0, -7.5, 0}, Size: 0.5})
	throw(s, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{})

	events := s.Tick()
	require.Equal(t, 1, countEvents(events, core.EventPowerUpCaught))
	assert.Empty(t, s.PowerUps())
	assert.InDelta(t, 1.5, s.Paddle().Scale, epsilon)
	assert.InDelta(t, 3.75, s.Paddle().HalfWidth(), epsilon)
	assert.Equal(t, "Bigger Paddle!", s.PowerUpStatus())

	// Effect timers keep running while the ball is parked
	s.ballInPlay = false

	for rep := 0; rep < 599; rep++ {
		s.Tick()
	}
	assert.InDelta(t, 1.5, s.Paddle().Scale, epsilon, "still active at 599 ticks")

	events = s.Tick()
	assert.InDelta(t, 1.0, s.Paddle().Scale, epsilon, "reverted at 600 ticks")
	assert.Equal(t, StatusNone, s.PowerUpStatus())
	assert.Empty(t, s.ActiveEffects())
	require.Equal(t, 1, countEvents(events, core.EventStatusChanged))
}

func TestPowerUpCatchRefreshesTimer(t *testing.T) {
	s := newTestSession(t)
	s.activate(PowerUpPaddleSize)

	for rep := 0; rep < 300; rep++ {
		s.Tick()
	}
	s.activate(PowerUpPaddleSize)
	assert.InDelta(t, 1.5, s.Paddle().Scale, epsilon, "magnitude does not stack")
	require.Len(t, s.ActiveEffects(), 1)

	for rep := 0; rep < 599; rep++ {
		s.Tick()
	}
	assert.InDelta(t, 1.5, s.Paddle().Scale, epsilon, "refreshed effect outlives the first timer")

	s.Tick()
	assert.InDelta(t, 1.0, s.Paddle().Scale, epsilon)
}

func TestRegisteredEffectKind(t *testing.T) {
	const slow = PowerUpPaddleSize + 1
	s := newTestSession(t)
	s.RegisterEffect(slow, EffectSpec{
		Label:    "Slow",
		Duration: 2 * time.Second,
		Apply:    func(s *Session) { s.ball.Vel = s.ball.Vel.Mul(0.5) },
		Revert:   func(s *Session) { s.ball.Vel = s.ball.Vel.Mul(2) },
	})

	s.activate(PowerUpPaddleSize)
	s.activate(slow)
	require.Len(t, s.ActiveEffects(), 2)
	assert.Equal(t, "Slow", s.PowerUpStatus(), "the latest catch names the status")
	assert.Equal(t, 2*time.Second, s.StatusRemaining())
	assert.InDelta(t, 0.075, s.Ball().Vel.Y(), epsilon)

	for rep := 0; rep < 120; rep++ {
		s.Tick()
	}
	require.Len(t, s.ActiveEffects(), 1)
	assert.Equal(t, "Bigger Paddle!", s.PowerUpStatus(), "status falls back to the remaining effect")
	assert.Equal(t, 8*time.Second, s.StatusRemaining())
	assert.InDelta(t, 1.5, s.Paddle().Scale, epsilon)
	assert.InDelta(t, 0.15, s.Ball().Vel.Y(), epsilon)

	seen := map[PowerUpKind]int{}
	for rep := 0; rep < 50; rep++ {
		s.spawnPowerUp(mgl64.Vec3{})
	}
	for _, p := range s.PowerUps() {
		seen[p.Kind]++
	}
	assert.Positive(t, seen[PowerUpPaddleSize])
	assert.Positive(t, seen[slow], "registered kinds drop from bricks too")
}

func TestFloorEndsGame(t *testing.T) {
	s := newTestSession(t)
	hitTopBrick(s)
	throw(s, mgl64.Vec3{0, -9.9, 0}, mgl64.Vec3{0, -0.15, 0})

	events := s.Tick()

	assert.True(t, s.GameOver())
	assert.False(t, s.BallInPlay())
	assert.Equal(t, 10, s.FinalScore())
	require.Equal(t, 1, countEvents(events, core.EventGameOver))
	for _, e := range events {
		if e.Kind == core.EventGameOver {
			assert.Equal(t, 10, e.Value)
		}
	}

	// Frozen until acknowledged
	pos := s.Ball().Pos
	for rep := 0; rep < 10; rep++ {
		s.Tick()
	}
	assert.Equal(t, pos, s.Ball().Pos)
	assert.Empty(t, s.Launch())
}

func TestAcknowledgeResets(t *testing.T) {
	s := newTestSession(t)
	for rep := 0; rep < 3; rep++ {
		hitTopBrick(s)
	}
	s.MovePaddleTo(2)
	throw(s, mgl64.Vec3{0, -9.9, 0}, mgl64.Vec3{0, -0.15, 0})
	s.Tick()
	require.True(t, s.GameOver())

	events := s.Acknowledge()

	assert.False(t, s.GameOver())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Len(t, s.Bricks(), 15)
	assert.Empty(t, s.PowerUps())
	assert.False(t, s.BallInPlay())
	assert.InDelta(t, 2, s.Ball().Pos.X(), epsilon)
	assert.InDelta(t, -7, s.Ball().Pos.Y(), epsilon)
	assert.Equal(t, 1, countEvents(events, core.EventReset))
	assert.Equal(t, 1, countEvents(events, core.EventScoreChanged))
	assert.Equal(t, 1, countEvents(events, core.EventLevelChanged))
	assert.Equal(t, 1, countEvents(events, core.EventStatusChanged))

	// Not over: nothing to acknowledge
	assert.Empty(t, s.Acknowledge())
}

func TestResetGameIdempotent(t *testing.T) {
	s := newTestSession(t)
	for rep := 0; rep < 20; rep++ {
		hitTopBrick(s)
	}
	s.activate(PowerUpPaddleSize)

	s.ResetGame()
	once := s.Snapshot()
	s.ResetGame()
	twice := s.Snapshot()

	assert.Equal(t, once.Hash(), twice.Hash())
	assert.Equal(t, once, twice)
	assert.InDelta(t, 1.0, s.Paddle().Scale, epsilon)
	assert.InDelta(t, 1.0, s.SpeedFactor(), epsilon)
	assert.Equal(t, StatusNone, s.PowerUpStatus())
}

func TestNoGlobalStateBetweenSessions(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)

	hitTopBrick(a)

	assert.Equal(t, 10, a.Score())
	assert.Equal(t, 0, b.Score())
	assert.Len(t, b.Bricks(), 15)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.PowerUps.Chance = 1
	s := NewSession(cfg, 3, 60)
	for rep := 0; rep < 4; rep++ {
		hitTopBrick(s)
	}
	s.activate(PowerUpPaddleSize)
	snap := s.Snapshot()

	restored := NewSession(cfg, 99, 60)
	restored.ApplySnapshot(snap)

	assert.Equal(t, snap.Hash(), restored.Snapshot().Hash())

	// Both continue identically
	s.Tick()
	restored.Tick()
	assert.Equal(t, s.Snapshot().Hash(), restored.Snapshot().Hash())
}
