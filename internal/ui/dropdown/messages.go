package dropdown

import "github.com/mikaw/roost/internal/search"

// debounceMsg fires when a typing burst has been quiet for the debounce
// interval. Stale tokens are ignored.
type debounceMsg struct {
	id    search.InstanceID
	token int
}

// resultsMsg delivers a fetch completion. gen and query let the widget
// discard completions that no longer match its current state.
type resultsMsg[T any] struct {
	id      search.InstanceID
	gen     int
	query   string
	results []T
	err     error
}

// blurMsg fires when the blur grace window elapses. If focus has not
// returned by then the widget closes and releases the active slot.
type blurMsg struct {
	id    search.InstanceID
	token int
}

// SelectedMsg is emitted upward when the user picks a result item.
type SelectedMsg[T any] struct {
	ID          search.InstanceID
	Item        T
	DisplayText string
}
