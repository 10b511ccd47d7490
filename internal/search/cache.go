package search

import "strings"

// Normalize canonicalizes a raw query into its cache key. Two queries that
// trim to the same string always share one cache entry; the empty string is a
// legitimate key of its own (an empty query with show-on-focus enabled still
// fetches and caches a default result set).
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Cache memoizes fetched result sets for a single widget instance, keyed by
// normalized query. Entries are never evicted or expired: the key space is
// bounded by what the user actually typed, and the cache dies with its
// widget.
type Cache[T any] struct {
	entries map[string][]T
}

// NewCache returns an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string][]T)}
}

// Get returns the cached result set for key. A fetched-and-empty result set
// is a hit, distinct from a key that was never fetched.
func (c *Cache[T]) Get(key string) ([]T, bool) {
	results, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return cloneResults(results), true
}

// Put stores the result set for key, replacing any previous entry.
func (c *Cache[T]) Put(key string, results []T) {
	c.entries[key] = cloneResults(results)
}

// Has reports whether key has ever been fetched, including fetches that
// returned nothing. Callers use this to avoid re-fetching known-empty
// queries.
func (c *Cache[T]) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of distinct keys fetched so far.
func (c *Cache[T]) Len() int {
	return len(c.entries)
}

func cloneResults[T any](results []T) []T {
	if results == nil {
		// Preserve the fetched-and-empty marker.
		return []T{}
	}
	dup := make([]T, len(results))
	copy(dup, results)
	return dup
}
