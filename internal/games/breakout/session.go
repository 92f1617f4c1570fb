package breakout

import (
	"sort"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Session is the whole state of one play session. Every simulation operation
// is a method on it; nothing lives in package-level variables.
//
// A Session is not safe for concurrent use. The platform drives it from a
// single goroutine.
type Session struct {
	id       string
	cfg      config.BreakoutConfig
	tickRate int
	rng      *SimpleRNG
	effects  map[PowerUpKind]EffectSpec
	kinds    []PowerUpKind // Sorted keys of effects

	ball     Ball
	paddle   Paddle
	bricks   []*Brick
	powerUps []*PowerUp
	active   []*ActiveEffect

	score       int
	level       int
	gameOver    bool
	ballInPlay  bool
	finalScore  int
	speedFactor float64
	status      string
	tick        uint64
	lastID      int

	events []core.Event
}

// NewSession creates a session in its initial state: level 1, full grid,
// ball parked above the centered paddle.
func NewSession(cfg config.BreakoutConfig, seed int64, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		tickRate: tickRate,
		rng:      NewSimpleRNG(seed),
		effects:  DefaultEffects(cfg.PowerUps),
		ball:     Ball{Radius: cfg.Ball.Radius},
		paddle: Paddle{
			Pos:    mgl64.Vec3{0, cfg.Paddle.Y, 0},
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Depth:  cfg.Paddle.Depth,
			Scale:  1,
		},
	}
	s.indexKinds()
	s.ResetGame()
	s.events = nil
	return s
}

// RegisterEffect adds or replaces the effect for a power-up kind.
func (s *Session) RegisterEffect(kind PowerUpKind, spec EffectSpec) {
	s.effects[kind] = spec
	s.indexKinds()
}

func (s *Session) indexKinds() {
	s.kinds = s.kinds[:0]
	for k := range s.effects {
		s.kinds = append(s.kinds, k)
	}
	sort.Slice(s.kinds, func(i, j int) bool { return s.kinds[i] < s.kinds[j] })
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.BreakoutConfig { return s.cfg }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// GameOver reports whether the session waits for the final score to be acknowledged.
func (s *Session) GameOver() bool { return s.gameOver }

// FinalScore returns the score of the game that just ended.
func (s *Session) FinalScore() int { return s.finalScore }

// BallInPlay reports whether the ball has been launched.
func (s *Session) BallInPlay() bool { return s.ballInPlay }

// SpeedFactor returns the compounded level speed multiplier.
func (s *Session) SpeedFactor() float64 { return s.speedFactor }

// Ticks returns the number of simulated ticks since the last full reset.
func (s *Session) Ticks() uint64 { return s.tick }

// Now returns the simulated time since the last full reset.
func (s *Session) Now() time.Duration {
	return time.Duration(s.tick) * time.Second / time.Duration(s.tickRate) //#nosec G115 -- tick count fits in int64
}

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Bricks returns the remaining bricks in creation order. Callers must not modify them.
func (s *Session) Bricks() []*Brick { return s.bricks }

// PowerUps returns the falling pickups. Callers must not modify them.
func (s *Session) PowerUps() []*PowerUp { return s.powerUps }

// ActiveEffects returns the effects currently applied.
func (s *Session) ActiveEffects() []*ActiveEffect { return s.active }

// ScoreText is the score display string.
func (s *Session) ScoreText() string { return strconv.Itoa(s.score) }

// LevelText is the level display string.
func (s *Session) LevelText() string { return strconv.Itoa(s.level) }

// PowerUpStatus is the power-up display string: "None" or the active label.
func (s *Session) PowerUpStatus() string { return s.status }

// StatusRemaining is how long the effect named by PowerUpStatus still lasts.
func (s *Session) StatusRemaining() time.Duration {
	if len(s.active) == 0 {
		return 0
	}
	return s.active[len(s.active)-1].Remaining(s.Now())
}

// Tick advances the simulation by one frame and returns what happened.
// Nothing moves while the game is over. Effect timers run whether or not the
// ball is in play; the ball and pickups only move while it is.
func (s *Session) Tick() []core.Event {
	if s.gameOver {
		return s.drain()
	}

	s.tick++
	s.expireEffects()

	if s.ballInPlay {
		s.ball.Integrate()
		s.resolveCollisions()
	}
	return s.drain()
}

// Launch puts the parked ball into play. It has no effect while the ball is
// already in play or the game is over.
func (s *Session) Launch() []core.Event {
	if s.ballInPlay || s.gameOver {
		return s.drain()
	}
	s.ballInPlay = true
	s.emit(core.Event{Kind: core.EventLaunched})
	return s.drain()
}

// MovePaddleTo moves the paddle center to x, clamped to the paddle limit.
// A parked ball follows the paddle.
func (s *Session) MovePaddleTo(x float64) {
	limit := s.cfg.Playfield.PaddleLimit
	s.paddle.Pos[0] = core.Clamp(x, -limit, limit)
	if !s.ballInPlay && !s.gameOver {
		s.ball.Pos[0] = s.paddle.Pos.X()
	}
}

// NudgePaddle moves the paddle by dx.
func (s *Session) NudgePaddle(dx float64) {
	s.MovePaddleTo(s.paddle.Pos.X() + dx)
}

// Acknowledge confirms the game-over notice and fully resets the session.
// It does nothing unless the game is over.
func (s *Session) Acknowledge() []core.Event {
	if !s.gameOver {
		return s.drain()
	}
	return s.ResetGame()
}

// ResetGame returns the session to its initial state: score 0, level 1,
// full grid, no pickups or effects, normal paddle, parked ball. The paddle
// keeps its horizontal position. Calling it twice equals calling it once.
func (s *Session) ResetGame() []core.Event {
	s.score = 0
	s.level = 1
	s.gameOver = false
	s.finalScore = 0
	s.speedFactor = 1
	s.tick = 0
	s.lastID = 0

	s.powerUps = s.powerUps[:0]
	s.active = s.active[:0]
	s.paddle.Scale = 1
	s.status = StatusNone

	s.parkBall()
	s.bricks = BuildGrid(s.cfg.Bricks, s.nextID)

	s.emit(core.Event{Kind: core.EventReset})
	s.emit(core.Event{Kind: core.EventScoreChanged, Value: s.score})
	s.emit(core.Event{Kind: core.EventLevelChanged, Value: s.level})
	s.emit(core.Event{Kind: core.EventStatusChanged, Text: s.status})
	return s.drain()
}

// parkBall puts the ball above the paddle, out of play, with the launch
// velocity scaled by the current level speed.
func (s *Session) parkBall() {
	s.ball.Pos = mgl64.Vec3{s.paddle.Pos.X(), s.cfg.Ball.LaunchY, 0}
	s.ball.Vel = mgl64.Vec3{s.cfg.Ball.LaunchVX, s.cfg.Ball.LaunchVY, 0}.Mul(s.speedFactor)
	s.ballInPlay = false
}

// resolveCollisions runs the per-tick collision pass in a fixed order:
// paddle, bricks, side walls, ceiling, floor, then pickups.
func (s *Session) resolveCollisions() {
	s.collidePaddle()
	s.collideBricks()

	pf := s.cfg.Playfield
	side, top, lost := CheckBounds(&s.ball, pf.HalfWidth, pf.Ceiling, pf.Floor)
	if side {
		s.ball.BounceX()
	}
	if top {
		s.ball.BounceY()
	}
	if lost {
		s.endGame()
		return
	}

	s.updatePowerUps()
}

// collidePaddle deflects the ball off the paddle. Returns true on contact.
func (s *Session) collidePaddle() bool {
	if !s.ball.Bounds().Intersects(s.paddle.Bounds()) {
		return false
	}
	Deflect(&s.ball, &s.paddle, s.cfg.Paddle.Influence, s.cfg.Ball.LaunchVY*s.speedFactor)
	return true
}

// collideBricks destroys at most one brick. Returns true on contact.
func (s *Session) collideBricks() bool {
	i := FirstBrickHit(s.ball.Bounds(), s.bricks)
	if i < 0 {
		return false
	}

	brick := s.bricks[i]
	s.bricks = append(s.bricks[:i], s.bricks[i+1:]...)
	s.ball.BounceY()

	s.score += s.cfg.Bricks.Points
	s.emit(core.Event{Kind: core.EventBrickDestroyed, ID: brick.ID})
	s.emit(core.Event{Kind: core.EventScoreChanged, Value: s.score})

	if s.rng.Float64() < s.cfg.PowerUps.Chance {
		s.spawnPowerUp(brick.Pos)
	}

	if len(s.bricks) == 0 {
		s.levelUp()
	}
	return true
}

// levelUp advances to the next level with a fresh grid and a faster ball.
func (s *Session) levelUp() {
	s.level++
	s.speedFactor *= s.cfg.Levels.SpeedMultiplier
	s.emit(core.Event{Kind: core.EventLevelChanged, Value: s.level})

	s.parkBall()
	s.bricks = BuildGrid(s.cfg.Bricks, s.nextID)
}

// endGame freezes the session until the final score is acknowledged.
func (s *Session) endGame() {
	s.gameOver = true
	s.ballInPlay = false
	s.finalScore = s.score
	s.emit(core.Event{Kind: core.EventGameOver, Value: s.finalScore})
}

// spawnPowerUp drops a pickup at pos.
func (s *Session) spawnPowerUp(pos mgl64.Vec3) {
	if len(s.kinds) == 0 {
		return
	}
	kind := s.kinds[0]
	if len(s.kinds) > 1 {
		kind = s.kinds[s.rng.Intn(len(s.kinds))]
	}

	p := &PowerUp{
		ID:   s.nextID(),
		Kind: kind,
		Pos:  pos,
		Size: s.cfg.PowerUps.Size,
	}
	s.powerUps = append(s.powerUps, p)
	s.emit(core.Event{Kind: core.EventPowerUpSpawned, ID: p.ID, Text: kind.String()})
}

// updatePowerUps moves pickups down, then catches or discards them.
func (s *Session) updatePowerUps() {
	paddle := s.paddle.Bounds()
	floor := s.cfg.Playfield.Floor

	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		p.Fall(s.cfg.PowerUps.FallStep)

		switch {
		case paddle.Intersects(p.Bounds()):
			s.emit(core.Event{Kind: core.EventPowerUpCaught, ID: p.ID, Text: p.Kind.String()})
			s.activate(p.Kind)
		case p.Pos.Y() < floor:
			s.emit(core.Event{Kind: core.EventPowerUpExpired, ID: p.ID, Text: p.Kind.String()})
		default:
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.powerUps); i++ {
		s.powerUps[i] = nil
	}
	s.powerUps = kept
}

// activate applies an effect. Catching a kind that is already active restarts
// its timer; magnitudes do not stack.
func (s *Session) activate(kind PowerUpKind) {
	spec, ok := s.effects[kind]
	if !ok {
		return
	}

	expires := s.Now() + spec.Duration
	found := false
	for i, e := range s.active {
		if e.Kind == kind {
			// Most recent catch moves to the end so its label is shown
			s.active = append(s.active[:i], s.active[i+1:]...)
			e.ExpiresAt = expires
			s.active = append(s.active, e)
			found = true
			break
		}
	}
	if !found {
		s.active = append(s.active, &ActiveEffect{Kind: kind, ExpiresAt: expires})
	}

	if spec.Apply != nil {
		spec.Apply(s)
	}
	s.refreshStatus()
}

// expireEffects reverts every effect whose time is up.
func (s *Session) expireEffects() {
	if len(s.active) == 0 {
		return
	}

	now := s.Now()
	kept := s.active[:0]
	var expired []PowerUpKind
	for _, e := range s.active {
		if e.ExpiresAt <= now {
			expired = append(expired, e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	s.active = kept

	for _, kind := range expired {
		if spec, ok := s.effects[kind]; ok && spec.Revert != nil {
			spec.Revert(s)
		}
	}
	if len(expired) > 0 {
		s.refreshStatus()
	}
}

// refreshStatus sets the status to the label of the most recent active
// effect and emits a change event when it differs.
func (s *Session) refreshStatus() {
	status := StatusNone
	if n := len(s.active); n > 0 {
		if spec, ok := s.effects[s.active[n-1].Kind]; ok {
			status = spec.Label
		}
	}
	if status == s.status {
		return
	}
	s.status = status
	s.emit(core.Event{Kind: core.EventStatusChanged, Text: status})
}

func (s *Session) nextID() int {
	s.lastID++
	return s.lastID
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// drain hands the pending events to the caller.
func (s *Session) drain() []core.Event {
	out := s.events
	s.events = nil
	return out
}
