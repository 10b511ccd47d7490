// Package config handles loading and parsing roost's configuration file.
//
// Configuration lives at ~/.config/roost/config.toml by default; an explicit
// path overrides it. A missing file is not an error: roost works out of the
// box against a directory API on the default bind with stock timing.
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:8640"
//	debounce_ms = 500
//	blur_grace_ms = 150
//
// All fields are optional; empty or non-positive values fall back to the
// defaults. Tilde expansion is performed on the config path automatically.
package config
