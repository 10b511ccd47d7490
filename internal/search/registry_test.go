package search

import "testing"

func TestRegistry_ActivateForceClosesOthers(t *testing.T) {
	r := NewRegistry()

	closed := map[InstanceID]int{}
	for _, id := range []InstanceID{"a", "b", "c"} {
		id := id
		r.Register(id, func() { closed[id]++ })
	}

	r.Activate("a")
	if got := r.ActiveID(); got != "a" {
		t.Fatalf("ActiveID = %q, want a", got)
	}
	if closed["a"] != 0 {
		t.Fatalf("activating a closed a itself %d times", closed["a"])
	}
	if closed["b"] != 1 || closed["c"] != 1 {
		t.Fatalf("closed = %v, want b and c closed once", closed)
	}

	r.Activate("b")
	if got := r.ActiveID(); got != "b" {
		t.Fatalf("ActiveID = %q, want b", got)
	}
	if closed["a"] != 1 || closed["c"] != 2 {
		t.Fatalf("closed = %v after second activate", closed)
	}
}

func TestRegistry_ActivateCurrentHolderIsNoop(t *testing.T) {
	r := NewRegistry()

	var closes int
	r.Register("a", func() {})
	r.Register("b", func() { closes++ })

	r.Activate("a")
	r.Activate("a")
	if closes != 1 {
		t.Fatalf("b closed %d times, want 1", closes)
	}
}

func TestRegistry_DeactivateOnlyReleasesOwnSlot(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func() {})
	r.Register("b", func() {})

	r.Activate("a")
	r.Deactivate("b")
	if got := r.ActiveID(); got != "a" {
		t.Fatalf("ActiveID = %q after foreign Deactivate, want a", got)
	}

	r.Deactivate("a")
	if got := r.ActiveID(); got != "" {
		t.Fatalf("ActiveID = %q after own Deactivate, want empty", got)
	}
}

func TestRegistry_UnregisterRemovesCallbackAndSlot(t *testing.T) {
	r := NewRegistry()

	var aCloses int
	unregister := r.Register("a", func() { aCloses++ })
	r.Register("b", func() {})

	r.Activate("a")
	unregister()
	if got := r.ActiveID(); got != "" {
		t.Fatalf("ActiveID = %q after unregistering holder, want empty", got)
	}

	r.Activate("b")
	if aCloses != 0 {
		t.Fatalf("unregistered instance a received %d force-closes", aCloses)
	}
}

func TestRegistry_CallbackMayReenter(t *testing.T) {
	r := NewRegistry()

	// A close callback that reads back into the registry must not deadlock,
	// and must observe the new holder already in place.
	var seen InstanceID
	r.Register("a", func() { seen = r.ActiveID() })
	r.Register("b", func() {})

	r.Activate("a")
	r.Activate("b")
	if seen != "b" {
		t.Fatalf("callback observed ActiveID %q, want b", seen)
	}
}

func TestRegistry_InstancesStayIsolatedAcrossRegistries(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()

	var closes int
	r1.Register("a", func() { closes++ })
	r2.Register("b", func() {})

	r2.Activate("b")
	if closes != 0 {
		t.Fatalf("activate in one registry closed instances in another (%d)", closes)
	}
	if got := r1.ActiveID(); got != "" {
		t.Fatalf("r1.ActiveID = %q, want empty", got)
	}
}
