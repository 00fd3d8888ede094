package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/koala-run/internal/config"
)

func newTestSession(t *testing.T) (*Session, *fakePhysics) {
	t.Helper()
	fp := newFakePhysics()
	s, err := NewSession(config.DefaultRunnerConfig(), fp)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, fp
}

// tickUntil ticks until cond holds and returns the events seen on the way.
func tickUntil(t *testing.T, s *Session, limit int, cond func(TickResult) bool) []Event {
	t.Helper()
	var seen []Event
	for i := 0; i < limit; i++ {
		res := s.Tick(Input{})
		seen = append(seen, res.Events...)
		if cond(res) {
			return seen
		}
	}
	t.Fatalf("condition not met within %d ticks (phase %v, tick %d)", limit, s.Phase(), s.Ticks())
	return nil
}

func phaseIs(p Phase) func(TickResult) bool {
	return func(r TickResult) bool { return r.Phase == p }
}

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(config.DefaultRunnerConfig(), nil); !errors.Is(err, ErrNilPhysics) {
		t.Errorf("NewSession(nil physics) error = %v, expected ErrNilPhysics", err)
	}

	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnEveryTicks = 0
	if _, err := NewSession(cfg, newFakePhysics()); err == nil {
		t.Error("NewSession with invalid config should fail")
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s, fp := newTestSession(t)

	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}
	if got := s.ProgressText(); got != "Obstacles beaten: 0" {
		t.Errorf("ProgressText() = %q", got)
	}
	if len(fp.platforms) != 13 {
		t.Errorf("ground platforms = %d, expected 13", len(fp.platforms))
	}
	snap := s.Snapshot()
	if snap.Tiles[0].X != 0 || snap.Tiles[1].X != snap.Tiles[0].Width {
		t.Errorf("tiles should start adjacent at 0: %+v", snap.Tiles)
	}
	if snap.Player.X() != 100 {
		t.Errorf("player x = %v, expected 100", snap.Player.X())
	}
}

func TestSpawnCadenceAndCap(t *testing.T) {
	s, _ := newTestSession(t)

	var spawnTicks []int
	for i := 0; i < 3000; i++ {
		res := s.Tick(Input{})
		for _, e := range eventsOf(res.Events, EventObstacleSpawned) {
			spawnTicks = append(spawnTicks, e.Tick)
		}
		if s.Phase().Terminal() {
			t.Fatalf("unexpected terminal phase %v at tick %d", s.Phase(), s.Ticks())
		}
	}

	expected := []int{360, 720, 1080, 1440, 1800}
	if len(spawnTicks) != len(expected) {
		t.Fatalf("spawned at ticks %v, expected %v", spawnTicks, expected)
	}
	for i, tick := range expected {
		if spawnTicks[i] != tick {
			t.Errorf("spawn %d at tick %d, expected %d", i+1, spawnTicks[i], tick)
		}
	}
	if got := s.State().ObstaclesSpawned; got != 5 {
		t.Errorf("ObstaclesSpawned = %d, expected 5", got)
	}
}

func TestProgressNumberingAndQueueOrder(t *testing.T) {
	s, _ := newTestSession(t)

	var texts []string
	var passedOrder []int
	for i := 0; i < 2100; i++ {
		res := s.Tick(Input{})
		for _, e := range eventsOf(res.Events, EventObstaclePassed) {
			texts = append(texts, e.Text)
			passedOrder = append(passedOrder, e.Obstacle)
		}

		snap := s.Snapshot()
		if got, want := len(snap.Pending), snap.State.ObstaclesSpawned-snap.Passed; got != want {
			t.Fatalf("tick %d: queue length %d, expected spawned-passed = %d", snap.Tick, got, want)
		}
		for j := 1; j < len(snap.Pending); j++ {
			if snap.Pending[j] <= snap.Pending[j-1] {
				t.Fatalf("tick %d: queue out of spawn order: %v", snap.Tick, snap.Pending)
			}
		}
	}

	expected := []string{
		"Obstacles beaten: 1",
		"Obstacles beaten: 1",
		"Obstacles beaten: 2",
		"Obstacles beaten: 3",
		"Obstacles beaten: 4",
	}
	if len(texts) != len(expected) {
		t.Fatalf("progress texts %v, expected %v", texts, expected)
	}
	for i := range expected {
		if texts[i] != expected[i] {
			t.Errorf("pass %d displayed %q, expected %q", i+1, texts[i], expected[i])
		}
		if passedOrder[i] != i+1 {
			t.Errorf("pass %d retired obstacle %d, expected %d", i+1, passedOrder[i], i+1)
		}
	}
}

func TestProgressEmptyQueueIsNoop(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 300; i++ {
		if res := s.Tick(Input{}); len(eventsOf(res.Events, EventObstaclePassed)) != 0 {
			t.Fatal("pass reported with no obstacles spawned")
		}
	}
	if got := s.ProgressText(); got != "Obstacles beaten: 0" {
		t.Errorf("ProgressText() = %q, expected unchanged", got)
	}
}

func TestFinaleTriggerAndDelay(t *testing.T) {
	s, fp := newTestSession(t)

	tickUntil(t, s, 2000, phaseIs(PhaseFinaleTriggered))
	triggerTick, triggerClock := s.Ticks(), s.Clock()

	if triggerTick != 1800 {
		t.Errorf("finale triggered at tick %d, expected the 5th spawn tick 1800", triggerTick)
	}
	if vx, _ := fp.Velocity(s.Snapshot().Player.Body); vx <= 0 {
		t.Errorf("player vx = %v after trigger, expected positive", vx)
	}
	if !s.State().FinaleTimerArmed || s.PendingTimers() != 1 {
		t.Error("finale timer should be armed")
	}

	tickUntil(t, s, 400, phaseIs(PhaseFinaleRunning))

	if got := s.Clock() - triggerClock; got != 5*time.Second {
		t.Errorf("FinaleRunning %v after trigger, expected 5s", got)
	}
	if got := s.Ticks() - triggerTick; got != 300 {
		t.Errorf("FinaleRunning %d ticks after trigger, expected 300", got)
	}

	snap := s.Snapshot()
	if snap.Antagonist == nil {
		t.Fatal("antagonist should exist in FinaleRunning")
	}
	if snap.Antagonist.VX >= 0 {
		t.Errorf("antagonist vx = %v, expected negative", snap.Antagonist.VX)
	}
	if snap.State.ObstaclesSpawned != 5 {
		t.Errorf("ObstaclesSpawned = %d, expected 5", snap.State.ObstaclesSpawned)
	}

	tiles := snap.Tiles
	for i := 0; i < 30; i++ {
		s.Tick(Input{})
	}
	if s.Snapshot().Tiles != tiles {
		t.Error("background should stop scrolling in FinaleRunning")
	}
}

func TestWinFiresOnceAfterDelay(t *testing.T) {
	s, fp := newTestSession(t)
	tickUntil(t, s, 2200, phaseIs(PhaseFinaleRunning))

	snap := s.Snapshot()
	player, bear := snap.Player.Body, snap.Antagonist.Body
	contactTick, contactClock := s.Ticks(), s.Clock()

	var wonTicks []int
	var wonClock time.Duration
	phaseChanges := 0
	for i := 0; i < 120; i++ {
		fp.touch(player, bear)
		res := s.Tick(Input{})
		for _, e := range res.Events {
			switch e.Kind {
			case EventWon:
				wonTicks = append(wonTicks, e.Tick)
				wonClock = e.At
			case EventPhaseChanged:
				phaseChanges++
			}
		}
	}

	if len(wonTicks) != 1 {
		t.Fatalf("Won emitted %d times, expected once", len(wonTicks))
	}
	if phaseChanges != 1 {
		t.Errorf("phase changed %d times, expected once", phaseChanges)
	}
	if got := wonTicks[0] - contactTick; got != 30 {
		t.Errorf("Won %d ticks after contact, expected 30", got)
	}
	if got := wonClock - contactClock; got != 500*time.Millisecond {
		t.Errorf("Won %v after contact, expected 500ms", got)
	}
	if s.Phase() != PhaseWon {
		t.Errorf("Phase() = %v, expected won", s.Phase())
	}
}

func TestGameOverThenRestart(t *testing.T) {
	s, fp := newTestSession(t)
	tickUntil(t, s, 400, func(r TickResult) bool {
		return len(eventsOf(r.Events, EventObstacleSpawned)) > 0
	})

	snap := s.Snapshot()
	firstID := s.ID()
	fp.touch(snap.Player.Body, snap.Obstacles[0].Body)

	res := s.Tick(Input{})
	if res.Phase != PhaseGameOver {
		t.Fatalf("phase = %v after obstacle contact, expected game_over", res.Phase)
	}
	overs := eventsOf(res.Events, EventGameOver)
	if len(overs) != 1 || overs[0].Obstacle != 1 {
		t.Errorf("game over events = %+v, expected one for obstacle 1", overs)
	}

	// Terminal: nothing else happens
	frozen := s.Ticks()
	for i := 0; i < 10; i++ {
		fp.touch(snap.Player.Body, snap.Obstacles[0].Body)
		if res := s.Tick(Input{}); len(res.Events) != 0 {
			t.Fatalf("events after game over: %+v", res.Events)
		}
	}
	if s.Ticks() != frozen {
		t.Error("game over should freeze the tick count")
	}

	resets := fp.resets
	s.Restart()

	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v after restart, expected running", s.Phase())
	}
	st := s.State()
	if st.ObstaclesSpawned != 0 || st.ObstaclesBeaten != 0 || st.NumberingFixed || st.FinaleTriggered {
		t.Errorf("state not reset: %+v", st)
	}
	if s.ID() == firstID {
		t.Error("restart should change the session id")
	}
	if fp.resets != resets+1 {
		t.Error("restart should reset physics")
	}
	if s.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d after restart", s.PendingTimers())
	}
	if s.ProgressText() != "Obstacles beaten: 0" {
		t.Errorf("ProgressText() = %q after restart", s.ProgressText())
	}
	if len(s.Snapshot().Obstacles) != 0 {
		t.Error("restart should clear obstacles")
	}
}

func TestGameOverDuringFinaleCancelsTimer(t *testing.T) {
	s, fp := newTestSession(t)
	tickUntil(t, s, 2000, phaseIs(PhaseFinaleTriggered))

	snap := s.Snapshot()
	last := snap.Obstacles[len(snap.Obstacles)-1]
	fp.touch(snap.Player.Body, last.Body)

	if res := s.Tick(Input{}); res.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, expected game_over", res.Phase)
	}
	if s.PendingTimers() != 0 {
		t.Error("game over should cancel the finale timer")
	}
	if s.State().FinaleTimerArmed {
		t.Error("FinaleTimerArmed should be cleared")
	}
}

func TestRestartCancelsFinaleTimer(t *testing.T) {
	s, _ := newTestSession(t)
	tickUntil(t, s, 2000, phaseIs(PhaseFinaleTriggered))

	s.Restart()
	if s.PendingTimers() != 0 {
		t.Fatalf("PendingTimers() = %d after restart", s.PendingTimers())
	}

	for i := 0; i < 400; i++ {
		if res := s.Tick(Input{}); res.Phase != PhaseRunning {
			t.Fatalf("phase = %v at tick %d, expected running", res.Phase, s.Ticks())
		}
	}
}

func TestStaleTimerSuppressed(t *testing.T) {
	s, _ := newTestSession(t)

	ran := false
	s.timers.Schedule(s.epoch-1, 0, 0, "stale", func(*Session) { ran = true })
	s.Tick(Input{})

	if ran {
		t.Error("timer from a previous session ran")
	}
	if s.PendingTimers() != 0 {
		t.Error("stale timer should be dropped")
	}
}

func TestStaleContactIgnoredAfterRestart(t *testing.T) {
	s, fp := newTestSession(t)
	tickUntil(t, s, 400, func(r TickResult) bool {
		return len(eventsOf(r.Events, EventObstacleSpawned)) > 0
	})
	stale := fp.contacts[0].fn

	s.Restart()
	stale()

	if res := s.Tick(Input{}); res.Phase != PhaseRunning {
		t.Errorf("contact from before restart changed phase to %v", res.Phase)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	s, fp := newTestSession(t)
	player := s.Snapshot().Player.Body

	fp.grounded = false
	s.Tick(Input{Jump: true})
	if _, vy := fp.Velocity(player); vy != 0 {
		t.Errorf("airborne jump changed vy to %v", vy)
	}

	fp.grounded = true
	s.Tick(Input{Jump: true})
	if _, vy := fp.Velocity(player); vy != -230 {
		t.Errorf("grounded jump vy = %v, expected -230", vy)
	}
}

func TestPassedObstaclesAreDisposedOffscreen(t *testing.T) {
	s, fp := newTestSession(t)

	// Obstacle 1 spawns at 360, passes the player around 570 and leaves the
	// view before the second spawn
	for i := 0; i < 719; i++ {
		s.Tick(Input{})
	}

	if got := len(s.Snapshot().Obstacles); got != 0 {
		t.Errorf("obstacles in flight = %d, expected 0", got)
	}
	if got := len(s.Passed()); got != 1 {
		t.Errorf("Passed() = %d, expected 1", got)
	}
	if len(fp.bodies) != 1 {
		t.Errorf("physics bodies = %d, expected only the player", len(fp.bodies))
	}
}
