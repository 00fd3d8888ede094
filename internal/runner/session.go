// Package runner implements the koala runner simulation: the looping
// background, the fixed obstacle sequence, progress tracking, the phase
// state machine and the wiring from physics contacts to phase transitions.
//
// All state lives in one Session. The session is driven by an external tick
// loop and delegates physics to a Physics collaborator; it never renders,
// reads input devices or blocks.
package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/koala-run/internal/config"
	"github.com/vovakirdan/koala-run/internal/core"
)

// GameState holds the session counters and flags.
type GameState struct {
	Phase            Phase
	ObstaclesSpawned int
	ObstaclesBeaten  int  // The displayed count, see ProgressTracker
	NumberingFixed   bool // The first pass has been counted
	FinaleTriggered  bool // The spawn cap guard has fired
	FinaleTimerArmed bool
	WinPending       bool // The antagonist was caught; reveal is scheduled
}

// Input is the per-tick input signal.
type Input struct {
	// Jump is a fresh jump press. It only takes effect while the player is
	// grounded.
	Jump bool
}

// TickResult is returned by Tick.
type TickResult struct {
	Phase  Phase
	Events []Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for phase transitions and timer activity.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTickRate sets the number of ticks per simulated second.
func WithTickRate(rate int) Option {
	return func(s *Session) {
		if rate > 0 {
			s.tickRate = rate
		}
	}
}

// Session is the aggregate of all runner state for one playthrough.
type Session struct {
	cfg      config.RunnerConfig
	physics  Physics
	logger   *log.Logger
	tickRate int

	epoch uint64 // Session id; bumped on every restart
	tick  int
	clock time.Duration

	world        World
	queue        ObstacleQueue
	past         []Obstacle
	state        GameState
	progressText string

	scroll     ScrollController
	spawner    ObstacleSpawner
	progress   ProgressTracker
	dispatcher *CollisionDispatcher
	timers     Scheduler

	finaleTimer TimerID
	winTimer    TimerID

	events []Event
}

// NewSession validates cfg and creates a session in the Running phase.
func NewSession(cfg config.RunnerConfig, phys Physics, opts ...Option) (*Session, error) {
	if phys == nil {
		return nil, ErrNilPhysics
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		physics:    phys,
		logger:     log.New(io.Discard),
		tickRate:   60,
		epoch:      1,
		dispatcher: NewCollisionDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}

	phys.Reset()
	s.setup()
	return s, nil
}

// setup builds the initial entities and counters for the current epoch.
func (s *Session) setup() {
	s.tick = 0
	s.clock = 0
	s.world = World{}
	s.queue.reset()
	s.past = nil
	s.state = GameState{Phase: PhaseRunning}
	s.events = nil
	s.finaleTimer, s.winTimer = 0, 0

	s.scroll = NewScrollController(&s.world.Tiles, s.cfg.Scroll.TileWidth)
	s.spawner = NewObstacleSpawner(s.cfg.Obstacles)
	s.progress = NewProgressTracker(s.cfg.HUD.Label)
	s.progressText = s.progress.Text(0)

	g := s.cfg.World.Ground
	for _, cx := range g.Centers {
		s.physics.AddPlatform(core.NewBox(cx, g.Y, g.Width, g.Height))
	}

	pc := s.cfg.Player
	box := core.NewBox(pc.X, pc.Y, pc.Width, pc.Height)
	s.world.Player = Player{
		Body: s.physics.AddBody(BodySpec{
			Box:                box,
			AllowGravity:       true,
			Bounce:             pc.Bounce,
			CollideWorldBounds: true,
			CollidePlatforms:   true,
		}),
		Box: box,
	}
}

// Restart reinitializes every entity, counter and the state machine, and
// cancels pending timers. Contacts and timers from before the restart can
// no longer reach the session.
func (s *Session) Restart() {
	cancelled := s.timers.CancelAll()
	s.epoch++
	s.dispatcher.Reset()
	s.physics.Reset()
	s.setup()
	s.logger.Info("session restarted", "session", s.epoch, "cancelled_timers", cancelled)
}

// Tick advances the session by one simulation step.
func (s *Session) Tick(in Input) TickResult {
	// Contacts reported since the previous tick
	s.applyRequests()
	if s.state.Phase.Terminal() {
		return s.result()
	}

	s.tick++
	s.clock = s.clockAt(s.tick)
	s.fireTimers()
	if s.state.Phase.Terminal() {
		return s.result()
	}

	s.scroll.Advance(s.cfg.Scroll.DeltaPerTick)

	player := s.world.Player.Body
	if in.Jump && s.physics.Grounded(player) {
		s.physics.SetVelocityY(player, s.cfg.Player.JumpVelocity)
	}

	if o := s.spawner.Step(s); o != nil {
		s.logger.Debug("obstacle spawned", "order", o.SpawnOrder, "tick", s.tick)
		s.emit(Event{Kind: EventObstacleSpawned, Obstacle: o.SpawnOrder})
	}

	if o := s.progress.Step(s); o != nil {
		s.logger.Debug("obstacle passed", "order", o.SpawnOrder, "display", s.progressText, "tick", s.tick)
		s.emit(Event{Kind: EventObstaclePassed, Obstacle: o.SpawnOrder, Text: s.progressText})
	}

	s.evaluateGuards()

	s.physics.Step(s.dt())
	s.world.sync(s.physics)
	for _, body := range s.world.disposeOffscreen(s.physics) {
		s.dispatcher.Forget(body)
	}

	// Contacts reported during this step
	s.applyRequests()
	return s.result()
}

func (s *Session) dt() time.Duration {
	return time.Second / time.Duration(s.tickRate)
}

// clockAt derives the simulated clock from the tick count so that it never
// accumulates rounding error.
func (s *Session) clockAt(tick int) time.Duration {
	return time.Duration(int64(tick) * int64(time.Second) / int64(s.tickRate))
}

func (s *Session) result() TickResult {
	events := s.events
	s.events = nil
	return TickResult{Phase: s.state.Phase, Events: events}
}

func (s *Session) emit(e Event) {
	e.Tick = s.tick
	e.At = s.clock
	e.Phase = s.state.Phase
	s.events = append(s.events, e)
}

// setPhase applies an allowed transition. Disallowed transitions, including
// any attempt to leave a terminal phase, are ignored.
func (s *Session) setPhase(to Phase) bool {
	from := s.state.Phase
	if !CanTransition(from, to) {
		s.logger.Debug("transition ignored", "from", from, "to", to, "tick", s.tick)
		return false
	}
	s.state.Phase = to
	s.logger.Info("phase changed", "from", from, "to", to, "tick", s.tick, "clock", s.clock)
	s.emit(Event{Kind: EventPhaseChanged})
	return true
}

// evaluateGuards checks the Running -> FinaleTriggered guard.
func (s *Session) evaluateGuards() {
	if s.state.Phase != PhaseRunning || s.state.FinaleTriggered {
		return
	}
	if s.state.ObstaclesSpawned != s.cfg.Obstacles.Max {
		return
	}
	s.triggerFinale()
}

func (s *Session) triggerFinale() {
	s.state.FinaleTriggered = true
	if !s.setPhase(PhaseFinaleTriggered) {
		return
	}
	s.physics.SetVelocityX(s.world.Player.Body, s.cfg.Finale.PlayerVelocityX)
	s.state.FinaleTimerArmed = true
	s.finaleTimer = s.schedule(s.cfg.Finale.FinaleDelay(), "finale", (*Session).enterFinaleRunning)
}

func (s *Session) enterFinaleRunning() {
	s.state.FinaleTimerArmed = false
	s.finaleTimer = 0
	if !s.setPhase(PhaseFinaleRunning) {
		return
	}

	s.scroll.Suspend()
	player := s.world.Player.Body
	s.physics.SetVelocityX(player, s.cfg.Finale.PlayerVelocityX)

	ac := s.cfg.Finale.Antagonist
	box := core.NewBox(ac.X, ac.Y, ac.Width, ac.Height)
	a := &Antagonist{
		Body: s.physics.AddBody(BodySpec{
			Box:          box,
			VX:           ac.VelocityX,
			AllowGravity: false,
			Immovable:    true,
		}),
		Box: box,
		VX:  ac.VelocityX,
	}
	s.world.Antagonist = a
	s.dispatcher.RegisterAntagonist(s.physics, player, a)
}

// applyRequests applies transitions queued by contact callbacks, in order.
func (s *Session) applyRequests() {
	for _, req := range s.dispatcher.Drain() {
		switch req.Kind {
		case RequestGameOver:
			s.gameOver(req.Body)
		case RequestWin:
			s.requestWin()
		}
	}
}

func (s *Session) gameOver(body BodyID) {
	if s.state.Phase.Terminal() {
		return
	}
	if s.finaleTimer != 0 {
		s.timers.Cancel(s.finaleTimer)
		s.finaleTimer = 0
		s.state.FinaleTimerArmed = false
	}
	if s.winTimer != 0 {
		s.timers.Cancel(s.winTimer)
		s.winTimer = 0
		s.state.WinPending = false
	}
	if !s.setPhase(PhaseGameOver) {
		return
	}

	order := 0
	for _, o := range s.world.Obstacles {
		if o.Body == body {
			order = o.SpawnOrder
			break
		}
	}
	s.emit(Event{Kind: EventGameOver, Obstacle: order, Text: s.progressText})
}

func (s *Session) requestWin() {
	if s.state.Phase != PhaseFinaleRunning || s.state.WinPending {
		return
	}
	s.state.WinPending = true
	s.winTimer = s.schedule(s.cfg.Finale.WinDelay(), "win-reveal", (*Session).win)
}

func (s *Session) win() {
	s.winTimer = 0
	if s.setPhase(PhaseWon) {
		s.emit(Event{Kind: EventWon, Text: s.progressText})
	}
}

func (s *Session) schedule(delay time.Duration, name string, fn func(*Session)) TimerID {
	id := s.timers.Schedule(s.epoch, s.clock, delay, name, fn)
	s.logger.Debug("timer armed", "timer", name, "delay", delay, "clock", s.clock)
	return id
}

// fireTimers runs every task due at the current clock. Tasks from a
// previous epoch are dropped.
func (s *Session) fireTimers() {
	for _, t := range s.timers.due(s.clock) {
		if t.epoch != s.epoch {
			s.logger.Warn("stale timer suppressed", "timer", t.name, "session", s.epoch, "timer_session", t.epoch)
			continue
		}
		if s.state.Phase.Terminal() {
			continue
		}
		t.fn(s)
	}
}

// ID returns the session id. It changes on every restart.
func (s *Session) ID() uint64 { return s.epoch }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.state.Phase }

// State returns the current counters and flags.
func (s *Session) State() GameState { return s.state }

// Ticks returns the number of ticks simulated since the last (re)start.
func (s *Session) Ticks() int { return s.tick }

// Clock returns the simulated time since the last (re)start.
func (s *Session) Clock() time.Duration { return s.clock }

// ProgressText returns the progress display string.
func (s *Session) ProgressText() string { return s.progressText }

// PendingTimers returns the number of armed timers.
func (s *Session) PendingTimers() int { return s.timers.Pending() }

// Passed returns the obstacles retired from the queue, in pass order.
func (s *Session) Passed() []Obstacle {
	out := make([]Obstacle, len(s.past))
	copy(out, s.past)
	return out
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	SessionID  uint64
	Tick       int
	Clock      time.Duration
	State      GameState
	Progress   string
	Tiles      [2]BackgroundTile
	Player     Player
	Obstacles  []Obstacle
	Antagonist *Antagonist
	Pending    []int // Spawn order of queued obstacles, head first
	Passed     int
}

// Snapshot copies the current entity state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.epoch,
		Tick:      s.tick,
		Clock:     s.clock,
		State:     s.state,
		Progress:  s.progressText,
		Tiles:     s.world.Tiles,
		Player:    s.world.Player,
		Obstacles: make([]Obstacle, len(s.world.Obstacles)),
		Pending:   s.queue.SpawnOrders(),
		Passed:    len(s.past),
	}
	for i, o := range s.world.Obstacles {
		snap.Obstacles[i] = *o
	}
	if s.world.Antagonist != nil {
		a := *s.world.Antagonist
		snap.Antagonist = &a
	}
	return snap
}
