package runner

import (
	"testing"
	"time"
)

func TestSchedulerDueOrderAndCancel(t *testing.T) {
	var sc Scheduler
	noop := func(*Session) {}

	late := sc.Schedule(1, 0, 500*time.Millisecond, "late", noop)
	early := sc.Schedule(1, 0, 100*time.Millisecond, "early", noop)
	dropped := sc.Schedule(1, 0, 200*time.Millisecond, "dropped", noop)

	if !sc.Cancel(dropped) {
		t.Error("Cancel should report the pending timer")
	}
	if sc.Cancel(dropped) {
		t.Error("second Cancel should report false")
	}

	if got := sc.due(50 * time.Millisecond); len(got) != 0 {
		t.Errorf("nothing should be due at 50ms, got %d", len(got))
	}

	got := sc.due(500 * time.Millisecond)
	if len(got) != 2 {
		t.Fatalf("due(500ms) returned %d timers, expected 2", len(got))
	}
	if got[0].id != early || got[1].id != late {
		t.Errorf("due order = [%d %d], expected [%d %d]", got[0].id, got[1].id, early, late)
	}
	if sc.Pending() != 0 {
		t.Errorf("Pending() = %d after firing, expected 0", sc.Pending())
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	var sc Scheduler
	sc.Schedule(1, 0, time.Second, "a", func(*Session) {})
	sc.Schedule(1, 0, time.Second, "b", func(*Session) {})

	if n := sc.CancelAll(); n != 2 {
		t.Errorf("CancelAll() = %d, expected 2", n)
	}
	if got := sc.due(time.Hour); len(got) != 0 {
		t.Errorf("cancelled timers fired: %d", len(got))
	}
}
