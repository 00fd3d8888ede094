package runner

import "github.com/vovakirdan/koala-run/internal/core"

// BackgroundTile is one half of the looping background. X is the left edge.
type BackgroundTile struct {
	X     float64
	Width float64
}

// Right returns the x-coordinate of the tile's right edge.
func (t BackgroundTile) Right() float64 {
	return t.X + t.Width
}

// Player is the runner controlled by the jump input.
type Player struct {
	Body     BodyID
	Box      core.Box
	VX, VY   float64
	Grounded bool
}

// X returns the player's horizontal position.
func (p Player) X() float64 { return p.Box.CX }

// Obstacle moves toward the player in a straight line.
type Obstacle struct {
	Body       BodyID
	Box        core.Box
	VX         float64
	SpawnOrder int  // 1-based, strictly increasing
	Retired    bool // Popped from the queue; waiting to leave the view
}

// X returns the obstacle's horizontal position.
func (o Obstacle) X() float64 { return o.Box.CX }

// Antagonist pursues the player during the finale.
type Antagonist struct {
	Body BodyID
	Box  core.Box
	VX   float64
}

// World is the entity registry: every mutable entity of a session.
type World struct {
	Tiles      [2]BackgroundTile
	Player     Player
	Obstacles  []*Obstacle // In flight; queued or retired but still visible
	Antagonist *Antagonist // Nil until the finale chase begins
}

// sync copies body state from the physics collaborator.
func (w *World) sync(p Physics) {
	w.Player.Box = p.Box(w.Player.Body)
	w.Player.VX, w.Player.VY = p.Velocity(w.Player.Body)
	w.Player.Grounded = p.Grounded(w.Player.Body)

	for _, o := range w.Obstacles {
		o.Box = p.Box(o.Body)
		o.VX, _ = p.Velocity(o.Body)
	}

	if w.Antagonist != nil {
		w.Antagonist.Box = p.Box(w.Antagonist.Body)
		w.Antagonist.VX, _ = p.Velocity(w.Antagonist.Body)
	}
}

// disposeOffscreen removes retired obstacles that have fully left the view
// on the left and returns their bodies.
func (w *World) disposeOffscreen(p Physics) []BodyID {
	kept := w.Obstacles[:0]
	var removed []BodyID
	for _, o := range w.Obstacles {
		if o.Retired && o.Box.Right() < 0 {
			p.RemoveBody(o.Body)
			removed = append(removed, o.Body)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(w.Obstacles); i++ {
		w.Obstacles[i] = nil
	}
	w.Obstacles = kept
	return removed
}
