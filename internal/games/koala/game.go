// Package koala is the runner game: a koala jumps over five obstacles, then
// runs from a bear in the finale. It adapts a runner.Session to the
// platform's Game interface.
package koala

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/koala-run/internal/config"
	"github.com/vovakirdan/koala-run/internal/core"
	"github.com/vovakirdan/koala-run/internal/physics"
	"github.com/vovakirdan/koala-run/internal/registry"
	"github.com/vovakirdan/koala-run/internal/runner"
)

// ID is the registry id of the game.
const ID = "koala"

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game on top of a runner session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	world   *physics.World
	session *runner.Session
	paused  bool
	outcome core.Outcome
	frame   int // Animation frame for the running legs
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Koala Run"
}

// Reset starts the first session or restarts the current one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.outcome = core.OutcomeNone
	g.frame = 0

	if g.session != nil {
		g.session.Restart()
		return
	}

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg
	g.world = physics.New(cfg.World.Width, cfg.World.Height, cfg.World.Gravity)

	session, err := runner.NewSession(cfg, g.world,
		runner.WithLogger(logger),
		runner.WithTickRate(runtime.TickRate),
	)
	if err != nil {
		// LoadRunner already validated cfg; only a broken default gets here
		logger.Error("cannot start session", "err", err)
		g.cfg = config.DefaultRunnerConfig()
		session, _ = runner.NewSession(g.cfg, g.world, runner.WithLogger(logger), runner.WithTickRate(runtime.TickRate))
	}
	g.session = session
}

// Step advances the session by one tick unless the run is paused or over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome != core.OutcomeNone {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame = (g.frame + 1) % 10

	res := g.session.Tick(runner.Input{Jump: in.Has(core.ActionJump)})
	ended := false
	for _, e := range res.Events {
		switch e.Kind {
		case runner.EventGameOver:
			g.outcome = core.OutcomeGameOver
			ended = true
		case runner.EventWon:
			g.outcome = core.OutcomeWon
			ended = true
		}
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    len(g.session.Passed()),
		Phase:    g.session.Phase().String(),
		Ticks:    g.session.Ticks(),
		Outcome:  g.outcome,
		Paused:   g.paused,
		GameOver: g.outcome == core.OutcomeGameOver,
		Won:      g.outcome == core.OutcomeWon,
	}
}

// Session returns the underlying runner session.
func (g *Game) Session() *runner.Session {
	return g.session
}

// Progress returns the progress display text.
func (g *Game) Progress() string {
	if g.session == nil {
		return ""
	}
	return g.session.ProgressText()
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
