// Package app provides the orchestration layer for the roost application.
//
// # Overview
//
// This package wires together configuration, the directory API client, the
// location preference store, and the UI to create the complete roost TUI.
// It serves as the composition root where all dependencies are initialized
// and connected.
//
// # Initialization
//
//  1. Load configuration from ~/.config/roost/config.toml
//  2. Load user preferences (theme, saved location)
//  3. Initialize the HTTP client for the directory API
//  4. Build the three-tier location store: durable prefs, in-memory session,
//     backend default
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Configuration and client initialization failures are fatal and returned
// from Run. Preference load failures are not: prefs.Load degrades to
// defaults, and the location store logs and skips tiers that fail during
// reconciliation.
package app
