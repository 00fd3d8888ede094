package runner

import (
	"sync"
	"testing"
)

func TestDispatcherFiresEachRuleOnce(t *testing.T) {
	fp := newFakePhysics()
	d := NewCollisionDispatcher()
	player := fp.AddBody(BodySpec{})
	o := &Obstacle{Body: fp.AddBody(BodySpec{}), SpawnOrder: 1}

	d.RegisterObstacle(fp, player, o)

	for i := 0; i < 5; i++ {
		fp.touch(player, o.Body)
	}

	reqs := d.Drain()
	if len(reqs) != 1 {
		t.Fatalf("Drain() returned %d requests, expected 1", len(reqs))
	}
	if reqs[0].Kind != RequestGameOver || reqs[0].Body != o.Body {
		t.Errorf("request = %+v, expected game over for body %d", reqs[0], o.Body)
	}

	fp.touch(player, o.Body)
	if reqs := d.Drain(); len(reqs) != 0 {
		t.Errorf("fired rule produced %d more requests", len(reqs))
	}
}

func TestDispatcherResetInvalidatesOldCallbacks(t *testing.T) {
	fp := newFakePhysics()
	d := NewCollisionDispatcher()
	player := fp.AddBody(BodySpec{})
	a := &Antagonist{Body: fp.AddBody(BodySpec{})}

	d.RegisterAntagonist(fp, player, a)
	stale := fp.contacts[0].fn

	d.Reset()
	stale()

	if reqs := d.Drain(); len(reqs) != 0 {
		t.Errorf("callback from before Reset produced %d requests", len(reqs))
	}
}

func TestDispatcherConcurrentReports(t *testing.T) {
	fp := newFakePhysics()
	d := NewCollisionDispatcher()
	player := fp.AddBody(BodySpec{})

	const n = 8
	obstacles := make([]*Obstacle, n)
	for i := range obstacles {
		obstacles[i] = &Obstacle{Body: fp.AddBody(BodySpec{}), SpawnOrder: i + 1}
		d.RegisterObstacle(fp, player, obstacles[i])
	}

	var wg sync.WaitGroup
	for _, o := range obstacles {
		wg.Add(1)
		go func(body BodyID) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				fp.touch(player, body)
			}
		}(o.Body)
	}
	wg.Wait()

	if reqs := d.Drain(); len(reqs) != n {
		t.Errorf("Drain() returned %d requests, expected %d", len(reqs), n)
	}
}
