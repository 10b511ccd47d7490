// Package ui provides the terminal user interface for roost.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program built around two typeahead search fields:
// a location picker and a listing search, both instances of the dropdown
// component from the ui/dropdown subpackage. The fields share one
// search.Registry so at most one result list is ever open.
//
// # Package Structure
//
//   - app.go: Root model, key routing, focus handling, and the Run function
//   - header.go: Status bar, command hints bar, and selected-listing line
//   - help.go: Keyboard shortcuts overlay
//   - theme.go: Color themes and Lipgloss style construction
//   - keys.go: Key bindings
//
// # Event Flow
//
//  1. Run() starts the program; Init reconciles the working location from
//     the preference tiers and delivers it as a selectionMsg
//  2. Tab cycles keyboard focus through the search fields; a focused field
//     owns the keyboard until it loses focus
//  3. Dropdown-internal messages (debounce ticks, fetch completions, blur
//     timers) are forwarded to both fields, which filter by instance id
//  4. Picking a location persists it through the location store and resets
//     the listing field so cached results from the previous location are
//     never shown
//
// # Key Bindings
//
//   - Tab / Shift+Tab: Cycle field focus
//   - up/down, enter, esc: Navigate inside an open dropdown
//   - c: Clear the saved location (falls back to the backend default)
//   - T: Cycle theme (persisted to prefs)
//   - h or ?: Toggle help
//   - q or Ctrl+C: Exit
package ui
