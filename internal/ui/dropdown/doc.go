// Package dropdown implements roost's typeahead search dropdown as a
// reusable Bubble Tea component.
//
// Each instance owns a text input, a per-instance result cache, and a
// debouncer, and shares an injected search.Registry with its sibling
// instances so that at most one dropdown is open at a time. Fetches run as
// asynchronous commands; every completion carries the instance id, the
// normalized query, and a generation number, and is applied only if all
// three still match the widget's current state. A slow response for a query
// the user has since abandoned, or for a widget that has since lost the
// active slot, is discarded silently rather than reopening a closed list.
//
// The fetch context is cancelled whenever a newer query supersedes an
// in-flight one, so abandoned requests are actually aborted instead of
// merely ignored.
package dropdown
