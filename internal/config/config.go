// Package config provides YAML-based configuration for the koala runner:
// world geometry, scroll speed, obstacle cadence and the finale script.
package config

import "time"

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Finale    FinaleConfig   `yaml:"finale"`
	HUD       HUDConfig      `yaml:"hud"`
}

// WorldConfig defines the visible world and its static ground.
type WorldConfig struct {
	Width   float64      `yaml:"width"`
	Height  float64      `yaml:"height"`
	Gravity float64      `yaml:"gravity"` // px/s², applied to bodies that allow gravity
	Ground  GroundConfig `yaml:"ground"`
}

// GroundConfig defines the row of static platforms the player runs on.
type GroundConfig struct {
	Y       float64   `yaml:"y"` // Center y of every platform
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Centers []float64 `yaml:"centers"` // Center x of each platform
}

// ScrollConfig defines the looping two-tile background.
type ScrollConfig struct {
	DeltaPerTick float64 `yaml:"delta_per_tick"` // px moved left per tick
	TileWidth    float64 `yaml:"tile_width"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Bounce       float64 `yaml:"bounce"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
}

// ObstacleConfig defines the spawn cadence and obstacle bodies.
type ObstacleConfig struct {
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"`
	Max             int     `yaml:"max"`
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	VelocityX       float64 `yaml:"velocity_x"` // Negative = toward the player
}

// FinaleConfig defines the scripted pursuit once every obstacle has spawned.
type FinaleConfig struct {
	DelayMS         int              `yaml:"delay_ms"`
	PlayerVelocityX float64          `yaml:"player_velocity_x"`
	WinDelayMS      int              `yaml:"win_delay_ms"`
	Antagonist      AntagonistConfig `yaml:"antagonist"`
}

// AntagonistConfig defines the pursuing entity spawned at finale entry.
type AntagonistConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"`
}

// HUDConfig defines the progress display.
type HUDConfig struct {
	Label string `yaml:"label"`
}

// FinaleDelay returns the pause between the finale trigger and the chase.
func (c FinaleConfig) FinaleDelay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// WinDelay returns the pause between catching the antagonist and the win screen.
func (c FinaleConfig) WinDelay() time.Duration {
	return time.Duration(c.WinDelayMS) * time.Millisecond
}
