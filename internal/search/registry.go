package search

import "sync"

// InstanceID identifies one live widget instance within a Registry.
type InstanceID string

// Registry coordinates mutual exclusivity across independently mounted
// dropdown instances: at most one holds the active slot at any time, and
// claiming the slot force-closes every other registered instance. It is an
// explicit, constructed object injected into each widget, so separate
// programs and tests never leak state into one another.
type Registry struct {
	mu      sync.Mutex
	active  InstanceID
	closers map[InstanceID]func()
}

// NewRegistry returns an empty registry with no active instance.
func NewRegistry() *Registry {
	return &Registry{closers: make(map[InstanceID]func())}
}

// Register adds the instance's force-close callback and returns a disposer
// that removes it again. The disposer also releases the active slot when the
// departing instance holds it.
func (r *Registry) Register(id InstanceID, onForceClose func()) func() {
	r.mu.Lock()
	r.closers[id] = onForceClose
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.closers, id)
		if r.active == id {
			r.active = ""
		}
		r.mu.Unlock()
	}
}

// Activate claims the active slot for id, invoking every other registered
// instance's force-close callback before returning. Callback order across
// instances is unspecified; each callback only closes its own instance, so
// the outcome is order-independent. Activating the current holder is a no-op.
func (r *Registry) Activate(id InstanceID) {
	r.mu.Lock()
	if r.active == id {
		r.mu.Unlock()
		return
	}
	r.active = id
	// Copy so callbacks run outside the lock and may call back in.
	others := make([]func(), 0, len(r.closers))
	for closerID, closer := range r.closers {
		if closerID != id && closer != nil {
			others = append(others, closer)
		}
	}
	r.mu.Unlock()

	for _, closer := range others {
		closer()
	}
}

// Deactivate releases the slot if id currently holds it. Releasing a slot
// held by someone else is a no-op.
func (r *Registry) Deactivate(id InstanceID) {
	r.mu.Lock()
	if r.active == id {
		r.active = ""
	}
	r.mu.Unlock()
}

// ActiveID returns the current holder of the active slot, or "" when the
// slot is empty.
func (r *Registry) ActiveID() InstanceID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}
