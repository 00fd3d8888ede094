package runner

import (
	"time"

	"github.com/vovakirdan/koala-run/internal/core"
)

type fakeBody struct {
	spec   BodySpec
	box    core.Box
	vx, vy float64
}

type fakeContact struct {
	a, b BodyID
	fn   func()
}

// fakePhysics integrates velocity with no gravity or collision response.
// Contacts only happen when a test calls touch.
type fakePhysics struct {
	next      BodyID
	bodies    map[BodyID]*fakeBody
	platforms []core.Box
	contacts  []fakeContact
	grounded  bool
	resets    int
	steps     int
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{bodies: make(map[BodyID]*fakeBody), grounded: true}
}

func (f *fakePhysics) AddPlatform(box core.Box) { f.platforms = append(f.platforms, box) }

func (f *fakePhysics) AddBody(spec BodySpec) BodyID {
	f.next++
	f.bodies[f.next] = &fakeBody{spec: spec, box: spec.Box, vx: spec.VX, vy: spec.VY}
	return f.next
}

func (f *fakePhysics) RemoveBody(id BodyID) {
	delete(f.bodies, id)
	kept := f.contacts[:0]
	for _, c := range f.contacts {
		if c.a != id && c.b != id {
			kept = append(kept, c)
		}
	}
	f.contacts = kept
}

func (f *fakePhysics) Box(id BodyID) core.Box {
	if b, ok := f.bodies[id]; ok {
		return b.box
	}
	return core.Box{}
}

func (f *fakePhysics) Velocity(id BodyID) (float64, float64) {
	if b, ok := f.bodies[id]; ok {
		return b.vx, b.vy
	}
	return 0, 0
}

func (f *fakePhysics) SetVelocityX(id BodyID, vx float64) {
	if b, ok := f.bodies[id]; ok {
		b.vx = vx
	}
}

func (f *fakePhysics) SetVelocityY(id BodyID, vy float64) {
	if b, ok := f.bodies[id]; ok {
		b.vy = vy
	}
}

func (f *fakePhysics) Grounded(BodyID) bool { return f.grounded }

func (f *fakePhysics) OnContact(a, b BodyID, fn func()) {
	f.contacts = append(f.contacts, fakeContact{a: a, b: b, fn: fn})
}

func (f *fakePhysics) Step(dt time.Duration) {
	f.steps++
	secs := dt.Seconds()
	for _, b := range f.bodies {
		b.box.CX += b.vx * secs
	}
}

func (f *fakePhysics) Reset() {
	f.resets++
	f.bodies = make(map[BodyID]*fakeBody)
	f.platforms = nil
	f.contacts = nil
}

// touch reports a contact between a and b to every matching registration.
func (f *fakePhysics) touch(a, b BodyID) {
	for _, c := range f.contacts {
		if (c.a == a && c.b == b) || (c.a == b && c.b == a) {
			c.fn()
		}
	}
}

func (f *fakePhysics) setX(id BodyID, x float64) {
	if b, ok := f.bodies[id]; ok {
		b.box.CX = x
	}
}
