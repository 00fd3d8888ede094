// Package physics is a small arcade physics engine: axis-aligned boxes,
// constant gravity, static platforms, world bounds and overlap callbacks.
// It implements runner.Physics.
package physics

import (
	"math"
	"time"

	"github.com/vovakirdan/koala-run/internal/core"
	"github.com/vovakirdan/koala-run/internal/runner"
)

// restSpeed is the vertical speed below which a bounce off the ground is
// treated as coming to rest.
const restSpeed = 10.0

type body struct {
	id       runner.BodyID
	spec     runner.BodySpec
	box      core.Box
	vx, vy   float64
	grounded bool
}

type contact struct {
	a, b runner.BodyID
	fn   func()
}

// World holds every body, platform and contact registration.
type World struct {
	width, height float64
	gravity       float64

	nextID    runner.BodyID
	bodies    []*body // Insertion order; Step resolves in this order
	byID      map[runner.BodyID]*body
	platforms []core.Box
	contacts  []contact
}

var _ runner.Physics = (*World)(nil)

// New creates a world with the given bounds and downward gravity in px/s².
func New(width, height, gravity float64) *World {
	return &World{
		width:   width,
		height:  height,
		gravity: gravity,
		byID:    make(map[runner.BodyID]*body),
	}
}

// AddPlatform adds a static platform.
func (w *World) AddPlatform(box core.Box) {
	w.platforms = append(w.platforms, box)
}

// Platforms returns the static platforms.
func (w *World) Platforms() []core.Box {
	out := make([]core.Box, len(w.platforms))
	copy(out, w.platforms)
	return out
}

// AddBody creates a dynamic body.
func (w *World) AddBody(spec runner.BodySpec) runner.BodyID {
	w.nextID++
	b := &body{id: w.nextID, spec: spec, box: spec.Box, vx: spec.VX, vy: spec.VY}
	w.bodies = append(w.bodies, b)
	w.byID[b.id] = b
	return b.id
}

// RemoveBody deletes a body and its contact registrations.
func (w *World) RemoveBody(id runner.BodyID) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)

	bodies := w.bodies[:0]
	for _, b := range w.bodies {
		if b.id != id {
			bodies = append(bodies, b)
		}
	}
	w.bodies = bodies

	contacts := w.contacts[:0]
	for _, c := range w.contacts {
		if c.a != id && c.b != id {
			contacts = append(contacts, c)
		}
	}
	w.contacts = contacts
}

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Box returns the bounds of a body, or the zero box for unknown ids.
func (w *World) Box(id runner.BodyID) core.Box {
	if b, ok := w.byID[id]; ok {
		return b.box
	}
	return core.Box{}
}

// Velocity returns the velocity of a body.
func (w *World) Velocity(id runner.BodyID) (float64, float64) {
	if b, ok := w.byID[id]; ok {
		return b.vx, b.vy
	}
	return 0, 0
}

// SetVelocityX sets the horizontal velocity of a body.
func (w *World) SetVelocityX(id runner.BodyID, vx float64) {
	if b, ok := w.byID[id]; ok {
		b.vx = vx
	}
}

// SetVelocityY sets the vertical velocity of a body.
func (w *World) SetVelocityY(id runner.BodyID, vy float64) {
	if b, ok := w.byID[id]; ok {
		b.vy = vy
	}
}

// Grounded reports whether the body rested on a platform or the bottom
// bound during the last step.
func (w *World) Grounded(id runner.BodyID) bool {
	if b, ok := w.byID[id]; ok {
		return b.grounded
	}
	return false
}

// OnContact registers fn to run every step in which a and b overlap.
func (w *World) OnContact(a, b runner.BodyID, fn func()) {
	w.contacts = append(w.contacts, contact{a: a, b: b, fn: fn})
}

// Reset removes everything. Body ids keep increasing across resets.
func (w *World) Reset() {
	w.bodies = nil
	w.byID = make(map[runner.BodyID]*body)
	w.platforms = nil
	w.contacts = nil
}

// Step integrates every body and resolves collisions. Contact callbacks run
// after all bodies have been resolved.
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()

	for _, b := range w.bodies {
		b.grounded = false
		if b.spec.AllowGravity {
			b.vy += w.gravity * secs
		}
		b.box.CX += b.vx * secs
		b.box.CY += b.vy * secs

		if b.spec.CollidePlatforms {
			for _, p := range w.platforms {
				if b.box.Overlaps(p) {
					w.separate(b, p)
				}
			}
		}
		if b.spec.CollideWorldBounds {
			w.clampToBounds(b)
		}
	}

	var fired []func()
	for _, c := range w.contacts {
		a, ok1 := w.byID[c.a]
		o, ok2 := w.byID[c.b]
		if !ok1 || !ok2 || !a.box.Overlaps(o.box) {
			continue
		}
		switch {
		case a.spec.Immovable && !o.spec.Immovable:
			w.separate(o, a.box)
		case o.spec.Immovable && !a.spec.Immovable:
			w.separate(a, o.box)
		}
		fired = append(fired, c.fn)
	}
	for _, fn := range fired {
		fn()
	}
}

// separate pushes b out of an immovable box along the axis of least overlap.
func (w *World) separate(b *body, fixed core.Box) {
	overlapX := math.Min(b.box.Right()-fixed.Left(), fixed.Right()-b.box.Left())
	overlapY := math.Min(b.box.Bottom()-fixed.Top(), fixed.Bottom()-b.box.Top())
	bounce := b.spec.Bounce

	if overlapY <= overlapX {
		if b.box.CY < fixed.CY {
			b.box.CY = fixed.Top() - b.box.H/2
			if b.vy > 0 {
				b.vy = restOrBounce(b.vy, bounce)
			}
			b.grounded = true
		} else {
			b.box.CY = fixed.Bottom() + b.box.H/2
			if b.vy < 0 {
				b.vy = -b.vy * bounce
			}
		}
		return
	}

	if b.box.CX < fixed.CX {
		b.box.CX = fixed.Left() - b.box.W/2
		if b.vx > 0 {
			b.vx = -b.vx * bounce
		}
	} else {
		b.box.CX = fixed.Right() + b.box.W/2
		if b.vx < 0 {
			b.vx = -b.vx * bounce
		}
	}
}

func (w *World) clampToBounds(b *body) {
	bounce := b.spec.Bounce
	if b.box.Left() < 0 {
		b.box.CX = b.box.W / 2
		b.vx = -b.vx * bounce
	} else if b.box.Right() > w.width {
		b.box.CX = w.width - b.box.W/2
		b.vx = -b.vx * bounce
	}
	if b.box.Top() < 0 {
		b.box.CY = b.box.H / 2
		b.vy = -b.vy * bounce
	} else if b.box.Bottom() > w.height {
		b.box.CY = w.height - b.box.H/2
		b.vy = restOrBounce(b.vy, bounce)
		b.grounded = true
	}
}

// restOrBounce reflects a downward landing speed, settling small bounces.
func restOrBounce(vy, bounce float64) float64 {
	up := -vy * bounce
	if -up < restSpeed {
		return 0
	}
	return up
}
