package config

import (
	_ "embed"
)

//go:embed defaults/koala.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/koala.yaml and is used when the embedded file cannot
// be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   350,
			Height:  510,
			Gravity: 300,
			Ground: GroundConfig{
				Y:       508,
				Width:   100,
				Height:  32,
				Centers: []float64{10, 110, 210, 310, 410, 510, 610, 710, 740, 840, 940, 1040, 1140},
			},
		},
		Scroll: ScrollConfig{
			DeltaPerTick: 0.5,
			TileWidth:    400,
		},
		Player: PlayerConfig{
			X:            100,
			Y:            450,
			Width:        34,
			Height:       20.4,
			Bounce:       0.2,
			JumpVelocity: -230,
		},
		Obstacles: ObstacleConfig{
			SpawnEveryTicks: 360,
			Max:             5,
			X:               800,
			Y:               470,
			Width:           32,
			Height:          32,
			VelocityX:       -200,
		},
		Finale: FinaleConfig{
			DelayMS:         5000,
			PlayerVelocityX: 30,
			WinDelayMS:      500,
			Antagonist: AntagonistConfig{
				X:         450,
				Y:         435,
				Width:     173,
				Height:    120,
				VelocityX: -20,
			},
		},
		HUD: HUDConfig{
			Label: "Obstacles beaten",
		},
	}
}
