package core

// Color is a foreground color for a screen cell. The platform maps each value
// to an ANSI 256-color code.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorSky
	ColorHill
	ColorGround
	ColorPlayer
	ColorObstacle
	ColorAntagonist
	ColorHUD
	ColorDanger
	ColorVictory
)
