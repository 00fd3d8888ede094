package runner

import "time"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventObstacleSpawned EventKind = iota
	EventObstaclePassed
	EventPhaseChanged
	EventGameOver
	EventWon
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventObstaclePassed:
		return "obstacle_passed"
	case EventPhaseChanged:
		return "phase_changed"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is emitted to the hosting application. GameOver asks the host to
// notify the player and call Restart; Won asks it to reveal the win screen.
type Event struct {
	Kind     EventKind
	Tick     int
	At       time.Duration // Simulated clock
	Phase    Phase         // Phase after the event
	Obstacle int           // Spawn order, for obstacle events
	Text     string        // Progress display, for pass events
}
