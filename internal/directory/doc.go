// Package directory provides an HTTP client for the rental-directory API.
//
// # Overview
//
// The client covers the three read-only lookups roost needs: location
// typeahead search, the backend's default location, and listing typeahead
// search. Response shapes live in types.go and are decoded into
// strongly-typed structs; nothing outside this package inspects the wire
// format.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and a roost User-Agent header
//   - Have a 5-second timeout (http.Client level)
//   - Return wrapped errors with context about what failed
//
// Passing a per-request context matters here: the typeahead widgets cancel
// superseded searches, and a cancelled context actually aborts the in-flight
// request instead of leaving it to complete and be discarded.
//
// # URL Construction
//
// The client accepts "host:port" or a full URL for the API bind value; the
// scheme defaults to http:// and any path/query/fragment is stripped.
//
// # Design Rationale
//
// The package is intentionally minimal: no caching (the search cache lives
// with each widget instance), no retries (a failed search is surfaced as an
// empty dropdown and retried on the next keystroke), and no mutations (roost
// is a read-only browser for the directory).
package directory
