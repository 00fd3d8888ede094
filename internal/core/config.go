package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Outcome is how a finished run ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeWon      Outcome = "won"
	OutcomeGameOver Outcome = "game_over"
)

// GameState is the frontend-facing summary of a game.
type GameState struct {
	Score    int     // Obstacles passed
	Phase    string  // Current phase name
	Ticks    int     // Ticks simulated in this session
	Outcome  Outcome // Set once the run has ended
	Paused   bool
	GameOver bool // Collision defeat; waiting for a restart
	Won      bool // Win screen revealed
}

// Finished reports whether the run reached a terminal outcome.
func (s GameState) Finished() bool {
	return s.Outcome != OutcomeNone
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick where the run reached its outcome.
	Ended bool
}
