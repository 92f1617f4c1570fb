package core

// EventKind identifies what happened during a simulation tick.
type EventKind int

const (
	EventScoreChanged   EventKind = iota // Value = new score
	EventLevelChanged                    // Value = new level
	EventStatusChanged                   // Text = power-up status label
	EventGameOver                        // Value = final score
	EventBrickDestroyed                  // ID = brick id
	EventPowerUpSpawned                  // ID = power-up id, Text = kind
	EventPowerUpCaught                   // ID = power-up id, Text = kind
	EventPowerUpExpired                  // ID = power-up id, Text = kind
	EventLaunched
	EventReset
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score_changed"
	case EventLevelChanged:
		return "level_changed"
	case EventStatusChanged:
		return "status_changed"
	case EventGameOver:
		return "game_over"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCaught:
		return "powerup_caught"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventLaunched:
		return "launched"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by a game so the platform can update displays and visuals
// without reading game internals.
type Event struct {
	Kind  EventKind
	Value int
	ID    int
	Text  string
}
