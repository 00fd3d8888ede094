package runner

import "sync"

// RequestKind is a transition requested by a contact.
type RequestKind int

const (
	RequestGameOver RequestKind = iota
	RequestWin
)

// String returns a human-readable name for the request kind.
func (k RequestKind) String() string {
	switch k {
	case RequestGameOver:
		return "game_over"
	case RequestWin:
		return "win"
	default:
		return "unknown"
	}
}

// TransitionRequest is queued by a contact callback and applied by the
// session at the next tick boundary.
type TransitionRequest struct {
	Kind RequestKind
	Body BodyID // The obstacle or antagonist the player touched
}

type contactRule struct {
	kind  RequestKind
	fired bool
}

// CollisionDispatcher maps contact notifications from the physics
// collaborator to state machine transition requests. Callbacks only enqueue;
// each registered pairing produces at most one request per session. It is
// safe to report contacts from any goroutine.
type CollisionDispatcher struct {
	mu      sync.Mutex
	epoch   uint64
	rules   map[BodyID]*contactRule
	pending []TransitionRequest
}

// NewCollisionDispatcher creates an empty dispatcher.
func NewCollisionDispatcher() *CollisionDispatcher {
	return &CollisionDispatcher{rules: make(map[BodyID]*contactRule)}
}

// RegisterObstacle wires "player x obstacle -> game over".
func (d *CollisionDispatcher) RegisterObstacle(p Physics, player BodyID, o *Obstacle) {
	d.register(p, player, o.Body, RequestGameOver)
}

// RegisterAntagonist wires "player x antagonist -> win".
func (d *CollisionDispatcher) RegisterAntagonist(p Physics, player BodyID, a *Antagonist) {
	d.register(p, player, a.Body, RequestWin)
}

func (d *CollisionDispatcher) register(p Physics, player, other BodyID, kind RequestKind) {
	d.mu.Lock()
	epoch := d.epoch
	d.rules[other] = &contactRule{kind: kind}
	d.mu.Unlock()

	p.OnContact(player, other, func() {
		d.report(epoch, other)
	})
}

// report records a contact. Contacts from a previous epoch, unknown bodies
// and already-fired rules are ignored.
func (d *CollisionDispatcher) report(epoch uint64, body BodyID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if epoch != d.epoch {
		return
	}
	rule, ok := d.rules[body]
	if !ok || rule.fired {
		return
	}
	rule.fired = true
	d.pending = append(d.pending, TransitionRequest{Kind: rule.kind, Body: body})
}

// Drain returns the queued requests in arrival order and clears the queue.
func (d *CollisionDispatcher) Drain() []TransitionRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) == 0 {
		return nil
	}
	out := d.pending
	d.pending = nil
	return out
}

// Forget drops the rule for a disposed body.
func (d *CollisionDispatcher) Forget(body BodyID) {
	d.mu.Lock()
	delete(d.rules, body)
	d.mu.Unlock()
}

// Reset drops every rule and queued request and invalidates callbacks bound
// before the reset.
func (d *CollisionDispatcher) Reset() {
	d.mu.Lock()
	d.epoch++
	d.rules = make(map[BodyID]*contactRule)
	d.pending = nil
	d.mu.Unlock()
}
