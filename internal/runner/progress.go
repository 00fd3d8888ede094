package runner

import "fmt"

// ProgressTracker detects when the player passes the oldest pending
// obstacle and maintains the beaten-count display.
//
// Numbering: the first pass always displays 1; every later pass displays
// (obstacles spawned - 1) at the time of the pass. For a run where each
// obstacle is passed before the next spawns this reads 1, 1, 2, 3, 4.
// The rule is kept as observed; whether later passes should count beaten
// obstacles directly is an open product question.
type ProgressTracker struct {
	label string
}

// NewProgressTracker creates a tracker whose display reads "<label>: N".
func NewProgressTracker(label string) ProgressTracker {
	return ProgressTracker{label: label}
}

// Text formats the display for the given count.
func (pt *ProgressTracker) Text(count int) string {
	return fmt.Sprintf("%s: %d", pt.label, count)
}

// Step compares the player to the queue head and retires it once passed.
// At most one obstacle is retired per tick. An empty queue is a no-op.
func (pt *ProgressTracker) Step(s *Session) *Obstacle {
	head, ok := s.queue.Peek()
	if !ok {
		return nil
	}
	if s.world.Player.X() < head.X() {
		return nil
	}

	if !s.state.NumberingFixed {
		s.state.ObstaclesBeaten = 1
		s.state.NumberingFixed = true
	} else {
		s.state.ObstaclesBeaten = s.state.ObstaclesSpawned - 1
	}
	s.progressText = pt.Text(s.state.ObstaclesBeaten)

	s.queue.Pop()
	head.Retired = true
	s.past = append(s.past, *head)
	return head
}
