package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded default configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			HalfWidth:   9,
			Ceiling:     9,
			Floor:       -10,
			PaddleLimit: 8,
		},
		Ball: BreakoutBall{
			Radius:   0.3,
			LaunchY:  -7,
			LaunchVX: 0.15,
			LaunchVY: 0.15,
		},
		Paddle: BreakoutPaddle{
			Y:         -8,
			Width:     5,
			Height:    0.5,
			Depth:     1,
			Influence: 0.2,
			KeyStep:   0.5,
		},
		Bricks: BreakoutBricks{
			Columns:  5,
			Rows:     3,
			Width:    2,
			Height:   1,
			Depth:    1,
			SpacingX: 2.5,
			SpacingY: 1.5,
			OriginX:  -5,
			OriginY:  5,
			Points:   10,
		},
		PowerUps: BreakoutPowerUps{
			Chance:           0.2,
			Size:             0.5,
			FallStep:         0.1,
			PaddleScaleBonus: 0.5,
			Duration:         10 * time.Second,
		},
		Levels: BreakoutLevels{
			SpeedMultiplier: 1.2,
		},
	}
}
