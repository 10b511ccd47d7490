package search

import "time"

// Debouncer coalesces a burst of scheduling calls into a single firing using
// generation tokens. Schedule supersedes any pending generation and hands
// back a fresh token; when the caller's timer fires it presents the token to
// Current to learn whether it is still the latest. A superseded or cancelled
// generation simply never runs (last write wins, no queueing).
//
// The debouncer never observes the scheduled operation or its errors, and it
// does not own a timer of its own: the caller pairs each token with whatever
// timing mechanism drives it (roost uses Bubble Tea tick commands). All
// methods are expected to run on a single goroutine.
type Debouncer struct {
	delay time.Duration
	gen   int
}

// NewDebouncer returns a debouncer whose callers should wait delay between
// Schedule and firing.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay returns the quiescence interval callers should time against.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule invalidates any pending generation and returns the token the
// caller must present when its timer fires.
func (d *Debouncer) Schedule() int {
	d.gen++
	return d.gen
}

// Cancel unconditionally invalidates every outstanding token. Used on
// teardown and when the input empties below the fetch threshold.
func (d *Debouncer) Cancel() {
	d.gen++
}

// Current reports whether token is still the latest scheduled generation.
func (d *Debouncer) Current(token int) bool {
	return token == d.gen
}
