package breakout

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// Snapshot contains the complete session state for replay and determinism
// checks. Vectors are flattened to [x, y] pairs so it serializes stably.
type Snapshot struct {
	SessionID   string  `yaml:"session_id"`
	Tick        uint64  `yaml:"tick"`
	Score       int     `yaml:"score"`
	Level       int     `yaml:"level"`
	GameOver    bool    `yaml:"game_over"`
	FinalScore  int     `yaml:"final_score"`
	BallInPlay  bool    `yaml:"ball_in_play"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Status      string  `yaml:"status"`
	LastID      int     `yaml:"last_id"`

	Ball        [4]float64 `yaml:"ball,flow"` // X, Y, VX, VY
	PaddleX     float64    `yaml:"paddle_x"`
	PaddleScale float64    `yaml:"paddle_scale"`

	Bricks   []BrickState   `yaml:"bricks"`
	PowerUps []PowerUpState `yaml:"powerups"`
	Effects  []EffectState  `yaml:"effects"`

	// RNG state for power-up rolls
	RNGState uint64 `yaml:"rng_state"`
}

// BrickState is a brick in a snapshot.
type BrickState struct {
	ID  int        `yaml:"id"`
	Row int        `yaml:"row"`
	Pos [2]float64 `yaml:"pos,flow"`
}

// PowerUpState is a falling pickup in a snapshot.
type PowerUpState struct {
	ID   int         `yaml:"id"`
	Kind PowerUpKind `yaml:"kind"`
	Pos  [2]float64  `yaml:"pos,flow"`
}

// EffectState is an active effect in a snapshot.
type EffectState struct {
	Kind      PowerUpKind   `yaml:"kind"`
	ExpiresAt time.Duration `yaml:"expires_at"`
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:   s.id,
		Tick:        s.tick,
		Score:       s.score,
		Level:       s.level,
		GameOver:    s.gameOver,
		FinalScore:  s.finalScore,
		BallInPlay:  s.ballInPlay,
		SpeedFactor: s.speedFactor,
		Status:      s.status,
		LastID:      s.lastID,
		Ball:        [4]float64{s.ball.Pos.X(), s.ball.Pos.Y(), s.ball.Vel.X(), s.ball.Vel.Y()},
		PaddleX:     s.paddle.Pos.X(),
		PaddleScale: s.paddle.Scale,
		Bricks:      make([]BrickState, 0, len(s.bricks)),
		PowerUps:    make([]PowerUpState, 0, len(s.powerUps)),
		Effects:     make([]EffectState, 0, len(s.active)),
		RNGState:    s.rng.state,
	}

	for _, b := range s.bricks {
		snap.Bricks = append(snap.Bricks, BrickState{ID: b.ID, Row: b.Row, Pos: [2]float64{b.Pos.X(), b.Pos.Y()}})
	}
	for _, p := range s.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpState{ID: p.ID, Kind: p.Kind, Pos: [2]float64{p.Pos.X(), p.Pos.Y()}})
	}
	for _, e := range s.active {
		snap.Effects = append(snap.Effects, EffectState{Kind: e.Kind, ExpiresAt: e.ExpiresAt})
	}
	return snap
}

// ApplySnapshot restores session state from a snapshot. The session keeps
// its own configuration and effect table.
func (s *Session) ApplySnapshot(snap Snapshot) {
	s.id = snap.SessionID
	s.tick = snap.Tick
	s.score = snap.Score
	s.level = snap.Level
	s.gameOver = snap.GameOver
	s.finalScore = snap.FinalScore
	s.ballInPlay = snap.BallInPlay
	s.speedFactor = snap.SpeedFactor
	s.status = snap.Status
	s.lastID = snap.LastID

	s.ball.Pos = mgl64.Vec3{snap.Ball[0], snap.Ball[1], 0}
	s.ball.Vel = mgl64.Vec3{snap.Ball[2], snap.Ball[3], 0}
	s.paddle.Pos[0] = snap.PaddleX
	s.paddle.Scale = snap.PaddleScale

	b := s.cfg.Bricks
	size := mgl64.Vec3{b.Width, b.Height, b.Depth}
	s.bricks = make([]*Brick, 0, len(snap.Bricks))
	for _, bs := range snap.Bricks {
		s.bricks = append(s.bricks, &Brick{
			ID:    bs.ID,
			Pos:   mgl64.Vec3{bs.Pos[0], bs.Pos[1], 0},
			Size:  size,
			Row:   bs.Row,
			Color: rowColors[bs.Row%len(rowColors)],
		})
	}

	s.powerUps = make([]*PowerUp, 0, len(snap.PowerUps))
	for _, ps := range snap.PowerUps {
		s.powerUps = append(s.powerUps, &PowerUp{
			ID:   ps.ID,
			Kind: ps.Kind,
			Pos:  mgl64.Vec3{ps.Pos[0], ps.Pos[1], 0},
			Size: s.cfg.PowerUps.Size,
		})
	}

	s.active = make([]*ActiveEffect, 0, len(snap.Effects))
	for _, es := range snap.Effects {
		s.active = append(s.active, &ActiveEffect{Kind: es.Kind, ExpiresAt: es.ExpiresAt})
	}

	s.rng.state = snap.RNGState
	s.events = nil
}

// Hash returns a digest of the simulation state for determinism testing.
// The session ID is not part of it.
func (snap Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(v)) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putB := func(v bool) {
		if v {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(snap.Tick)
	putI(snap.Score)
	putI(snap.Level)
	putB(snap.GameOver)
	putI(snap.FinalScore)
	putB(snap.BallInPlay)
	putF(snap.SpeedFactor)
	_, _ = d.WriteString(snap.Status)
	putI(snap.LastID)

	for _, v := range snap.Ball {
		putF(v)
	}
	putF(snap.PaddleX)
	putF(snap.PaddleScale)

	putI(len(snap.Bricks))
	for _, b := range snap.Bricks {
		putI(b.ID)
		putI(b.Row)
		putF(b.Pos[0])
		putF(b.Pos[1])
	}

	putI(len(snap.PowerUps))
	for _, p := range snap.PowerUps {
		putI(p.ID)
		putI(int(p.Kind))
		putF(p.Pos[0])
		putF(p.Pos[1])
	}

	putI(len(snap.Effects))
	for _, e := range snap.Effects {
		putI(int(e.Kind))
		putI(int(e.ExpiresAt))
	}

	putU(snap.RNGState)
	return d.Sum64()
}
