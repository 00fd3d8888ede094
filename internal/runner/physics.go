package runner

import (
	"errors"
	"time"

	"github.com/vovakirdan/koala-run/internal/core"
)

// ErrNilPhysics is returned when a session is created without a physics
// collaborator.
var ErrNilPhysics = errors.New("runner: physics collaborator is required")

// BodyID identifies a body owned by the physics collaborator.
type BodyID int

// NoBody is the zero BodyID; physics implementations never hand it out.
const NoBody BodyID = 0

// BodySpec describes a dynamic body to create.
type BodySpec struct {
	Box                core.Box // Initial position (center) and size
	VX, VY             float64  // Initial velocity in px/s
	AllowGravity       bool
	Immovable          bool // Never displaced by collision response
	Bounce             float64
	CollideWorldBounds bool
	CollidePlatforms   bool
}

// Physics is the simulation collaborator the session drives. It integrates
// gravity and velocity, resolves platform and body collisions, and reports
// contacts through registered callbacks. Callbacks may run from inside Step
// or from any other goroutine; the session treats them as reentrant.
type Physics interface {
	// AddPlatform adds a static platform.
	AddPlatform(box core.Box)
	// AddBody creates a dynamic body and returns its id.
	AddBody(spec BodySpec) BodyID
	// RemoveBody deletes a body and every contact registration involving it.
	RemoveBody(id BodyID)
	// Box returns the current bounds of a body.
	Box(id BodyID) core.Box
	// Velocity returns the current velocity of a body.
	Velocity(id BodyID) (vx, vy float64)
	SetVelocityX(id BodyID, vx float64)
	SetVelocityY(id BodyID, vy float64)
	// Grounded reports whether the body rested on something during the
	// last step.
	Grounded(id BodyID) bool
	// OnContact registers fn to be called whenever a and b collide.
	OnContact(a, b BodyID, fn func())
	// Step advances the simulation by dt.
	Step(dt time.Duration)
	// Reset removes every body, platform and contact registration.
	Reset()
}
