package runner

// Phase is a named state of the session's state machine.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseFinaleTriggered
	PhaseFinaleRunning
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFinaleTriggered:
		return "finale_triggered"
	case PhaseFinaleRunning:
		return "finale_running"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition can leave the phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// transitions lists every allowed edge. Phases are never re-entered.
var transitions = map[Phase][]Phase{
	PhaseRunning:         {PhaseFinaleTriggered, PhaseGameOver},
	PhaseFinaleTriggered: {PhaseFinaleRunning, PhaseGameOver},
	PhaseFinaleRunning:   {PhaseWon, PhaseGameOver},
}

// CanTransition reports whether from -> to is an allowed edge.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
