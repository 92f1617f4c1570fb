// Package config provides YAML-based game configuration loading and
// difficulty presets for brickbreak.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BreakoutConfig contains all tunables of the brick breaker simulation.
// Distances are world units, velocities are world units per tick.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield `yaml:"playfield"`
	Ball      BreakoutBall      `yaml:"ball"`
	Paddle    BreakoutPaddle    `yaml:"paddle"`
	Bricks    BreakoutBricks    `yaml:"bricks"`
	PowerUps  BreakoutPowerUps  `yaml:"powerups"`
	Levels    BreakoutLevels    `yaml:"levels"`
}

// BreakoutPlayfield defines the bounds the ball bounces between.
type BreakoutPlayfield struct {
	HalfWidth   float64 `yaml:"half_width"`   // Side walls at +-HalfWidth
	Ceiling     float64 `yaml:"ceiling"`      // Ball bounces when y exceeds this
	Floor       float64 `yaml:"floor"`        // Ball lost / pickup gone below this
	PaddleLimit float64 `yaml:"paddle_limit"` // Paddle center clamped to +-PaddleLimit
}

// BreakoutBall defines the ball geometry and launch state.
type BreakoutBall struct {
	Radius   float64 `yaml:"radius"`
	LaunchY  float64 `yaml:"launch_y"`
	LaunchVX float64 `yaml:"launch_vx"`
	LaunchVY float64 `yaml:"launch_vy"`
}

// BreakoutPaddle defines the paddle geometry and steering.
type BreakoutPaddle struct {
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Depth     float64 `yaml:"depth"`
	Influence float64 `yaml:"influence"` // Horizontal velocity at the paddle edge
	KeyStep   float64 `yaml:"key_step"`  // Paddle movement per arrow key press
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Depth    float64 `yaml:"depth"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
	OriginX  float64 `yaml:"origin_x"` // Center of column 0
	OriginY  float64 `yaml:"origin_y"` // Center of row 0
	Points   int     `yaml:"points"`
}

// BreakoutPowerUps defines pickup spawning and the paddle-size effect.
type BreakoutPowerUps struct {
	Chance           float64       `yaml:"chance"` // Probability per destroyed brick
	Size             float64       `yaml:"size"`
	FallStep         float64       `yaml:"fall_step"`
	PaddleScaleBonus float64       `yaml:"paddle_scale_bonus"`
	Duration         time.Duration `yaml:"duration"`
}

// BreakoutLevels defines level progression.
type BreakoutLevels struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Compounds on every level-up
}

// GridSize returns the number of bricks in a full grid.
func (c BreakoutConfig) GridSize() int {
	return c.Bricks.Columns * c.Bricks.Rows
}

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Playfield.HalfWidth <= 0 {
		errs = append(errs, errors.New("playfield.half_width must be positive"))
	}
	if c.Playfield.Ceiling <= c.Playfield.Floor {
		errs = append(errs, errors.New("playfield.ceiling must be above playfield.floor"))
	}
	if c.Playfield.PaddleLimit <= 0 || c.Playfield.PaddleLimit > c.Playfield.HalfWidth {
		errs = append(errs, errors.New("playfield.paddle_limit must be in (0, half_width]"))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball.radius must be positive"))
	}
	if c.Ball.LaunchVY <= 0 {
		errs = append(errs, errors.New("ball.launch_vy must be positive (upward)"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle.width and paddle.height must be positive"))
	}
	if c.Paddle.Influence < 0 {
		errs = append(errs, errors.New("paddle.influence must not be negative"))
	}
	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, errors.New("bricks.columns and bricks.rows must be positive"))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, errors.New("bricks.width and bricks.height must be positive"))
	}
	if c.Bricks.SpacingX < c.Bricks.Width || c.Bricks.SpacingY < c.Bricks.Height {
		errs = append(errs, errors.New("bricks.spacing_x and bricks.spacing_y must be at least the brick size"))
	}
	if c.Bricks.Points < 0 {
		errs = append(errs, errors.New("bricks.points must not be negative"))
	}
	if c.PowerUps.Chance < 0 || c.PowerUps.Chance > 1 {
		errs = append(errs, errors.New("powerups.chance must be in [0, 1]"))
	}
	if c.PowerUps.Size <= 0 {
		errs = append(errs, errors.New("powerups.size must be positive"))
	}
	if c.PowerUps.PaddleScaleBonus < 0 {
		errs = append(errs, errors.New("powerups.paddle_scale_bonus must not be negative"))
	}
	if c.PowerUps.FallStep <= 0 {
		errs = append(errs, errors.New("powerups.fall_step must be positive"))
	}
	if c.PowerUps.Duration <= 0 {
		errs = append(errs, errors.New("powerups.duration must be positive"))
	}
	if c.Levels.SpeedMultiplier < 1 {
		errs = append(errs, errors.New("levels.speed_multiplier must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset. An empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
