// Package search implements the engine behind roost's typeahead dropdowns:
// a per-instance result cache, a generation-token debouncer, and a registry
// that keeps at most one dropdown open across a whole program.
//
// The package is UI-agnostic. Widgets own their cache and debouncer and share
// a single Registry injected at construction time; nothing here reaches for
// package-level state.
package search
