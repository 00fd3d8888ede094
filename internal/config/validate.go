package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks the invariants the simulation relies on and reports every
// offending field.
func (c RunnerConfig) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: %s: %s", field, fmt.Sprintf(format, args...)))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		bad("world", "size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Scroll.TileWidth <= 0 {
		bad("scroll.tile_width", "must be positive, got %v", c.Scroll.TileWidth)
	} else if c.Scroll.TileWidth < c.World.Width {
		// Two tiles narrower than the view leave a visible gap.
		bad("scroll.tile_width", "must be at least world.width (%v), got %v", c.World.Width, c.Scroll.TileWidth)
	}
	if c.Scroll.DeltaPerTick < 0 || c.Scroll.DeltaPerTick > c.Scroll.TileWidth {
		bad("scroll.delta_per_tick", "must be within [0, tile_width], got %v", c.Scroll.DeltaPerTick)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		bad("player", "size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.JumpVelocity >= 0 {
		bad("player.jump_velocity", "must be negative (up), got %v", c.Player.JumpVelocity)
	}
	if c.Obstacles.SpawnEveryTicks <= 0 {
		bad("obstacles.spawn_every_ticks", "must be positive, got %d", c.Obstacles.SpawnEveryTicks)
	}
	if c.Obstacles.Max <= 0 {
		bad("obstacles.max", "must be positive, got %d", c.Obstacles.Max)
	}
	if c.Obstacles.VelocityX >= 0 {
		bad("obstacles.velocity_x", "must be negative (leftward), got %v", c.Obstacles.VelocityX)
	}
	if c.Finale.DelayMS < 0 || c.Finale.WinDelayMS < 0 {
		bad("finale", "delays must not be negative, got %d/%d", c.Finale.DelayMS, c.Finale.WinDelayMS)
	}
	if c.Finale.PlayerVelocityX <= 0 {
		bad("finale.player_velocity_x", "must be positive, got %v", c.Finale.PlayerVelocityX)
	}
	if c.Finale.Antagonist.VelocityX >= 0 {
		bad("finale.antagonist.velocity_x", "must be negative (leftward), got %v", c.Finale.Antagonist.VelocityX)
	} else if math.Abs(c.Finale.Antagonist.VelocityX) >= c.Finale.PlayerVelocityX {
		bad("finale.antagonist.velocity_x", "must be slower than finale.player_velocity_x (%v), got %v",
			c.Finale.PlayerVelocityX, c.Finale.Antagonist.VelocityX)
	}

	return errors.Join(errs...)
}
