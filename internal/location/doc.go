// Package location reconciles the user's working location from three
// overlapping sources, in strict precedence order:
//
//  1. the durable preference file (survives restarts) — once the user has
//     explicitly picked a location it always wins,
//  2. an in-memory session cache populated by an earlier backend response
//     (survives view changes within one run),
//  3. a fresh default-location lookup against the directory API.
//
// The precedence rule is encoded as an explicit resolver chain tried in
// order, each tier answering found or not found, so it can be unit-tested in
// isolation from any particular storage mechanism. Malformed stored entries
// are treated as absent and fall through to the next tier.
package location
