package runner

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled task.
type TimerID uint64

type timer struct {
	id    TimerID
	name  string
	due   time.Duration
	epoch uint64
	fn    func(*Session)
}

// Scheduler runs one-shot tasks against the simulated clock. Every task is
// keyed to the session epoch it was scheduled in; the session refuses to run
// a task whose epoch is stale.
type Scheduler struct {
	nextID  TimerID
	pending []timer
}

// Schedule arms fn to run once the clock reaches now+delay.
func (sc *Scheduler) Schedule(epoch uint64, now, delay time.Duration, name string, fn func(*Session)) TimerID {
	sc.nextID++
	sc.pending = append(sc.pending, timer{
		id:    sc.nextID,
		name:  name,
		due:   now + delay,
		epoch: epoch,
		fn:    fn,
	})
	sort.SliceStable(sc.pending, func(i, j int) bool {
		return sc.pending[i].due < sc.pending[j].due
	})
	return sc.nextID
}

// Cancel disarms a pending task. It reports whether the task was pending.
func (sc *Scheduler) Cancel(id TimerID) bool {
	for i, t := range sc.pending {
		if t.id == id {
			sc.pending = append(sc.pending[:i], sc.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll disarms every pending task and returns how many were dropped.
func (sc *Scheduler) CancelAll() int {
	n := len(sc.pending)
	sc.pending = nil
	return n
}

// Pending returns the number of armed tasks.
func (sc *Scheduler) Pending() int {
	return len(sc.pending)
}

// due removes and returns every task whose deadline is at or before now,
// earliest first.
func (sc *Scheduler) due(now time.Duration) []timer {
	n := 0
	for n < len(sc.pending) && sc.pending[n].due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	fired := make([]timer, n)
	copy(fired, sc.pending[:n])
	sc.pending = append(sc.pending[:0], sc.pending[n:]...)
	return fired
}
