package runner

import (
	"github.com/vovakirdan/koala-run/internal/config"
	"github.com/vovakirdan/koala-run/internal/core"
)

// ObstacleSpawner creates one obstacle every fixed number of ticks until the
// session maximum is reached, then goes dormant.
type ObstacleSpawner struct {
	cfg             config.ObstacleConfig
	ticksSinceSpawn int
}

// NewObstacleSpawner creates a spawner for the given obstacle settings.
func NewObstacleSpawner(cfg config.ObstacleConfig) ObstacleSpawner {
	return ObstacleSpawner{cfg: cfg}
}

// Dormant reports whether the spawn cap has been reached.
func (sp *ObstacleSpawner) Dormant(s *Session) bool {
	return s.state.ObstaclesSpawned >= sp.cfg.Max
}

// Step counts the current tick and spawns when the cadence is due.
// It returns the new obstacle, or nil.
func (sp *ObstacleSpawner) Step(s *Session) *Obstacle {
	if sp.Dormant(s) {
		return nil
	}

	sp.ticksSinceSpawn++
	if sp.ticksSinceSpawn < sp.cfg.SpawnEveryTicks {
		return nil
	}
	sp.ticksSinceSpawn = 0

	box := core.NewBox(sp.cfg.X, sp.cfg.Y, sp.cfg.Width, sp.cfg.Height)
	body := s.physics.AddBody(BodySpec{
		Box:          box,
		VX:           sp.cfg.VelocityX,
		AllowGravity: false,
		Immovable:    true,
	})

	s.state.ObstaclesSpawned++
	o := &Obstacle{
		Body:       body,
		Box:        box,
		VX:         sp.cfg.VelocityX,
		SpawnOrder: s.state.ObstaclesSpawned,
	}

	s.world.Obstacles = append(s.world.Obstacles, o)
	s.queue.Push(o)
	s.dispatcher.RegisterObstacle(s.physics, s.world.Player.Body, o)

	return o
}
