package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset: the drawable
// area, how fast the simulation runs and the seed its RNG starts from.
type RuntimeConfig struct {
	ScreenW  int   // drawable columns
	ScreenH  int   // drawable rows
	TickRate int   // simulation ticks per second
	Seed     int64 // 0 picks a time-based seed in Normalize
}

// DefaultConfig returns an 80x24 runtime at the default tick rate with an
// unset seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Normalize fills in a missing tick rate and seed. now supplies the seed so
// callers that need reproducible runs can pass a fixed clock.
func (c RuntimeConfig) Normalize(now func() time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = now().UnixNano()
	}
	c.ScreenW = max(c.ScreenW, 0)
	c.ScreenH = max(c.ScreenH, 0)
	return c
}

// TickInterval returns the simulated time covered by one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Normalize(time.Now).TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starting at 1
	GameOver bool // Waiting for the player to acknowledge the final score
	Paused   bool // Whether the game is paused
	InPlay   bool // Whether the ball has been launched
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
