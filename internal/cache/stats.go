package cache

import (
	"fmt"
	"io"
)

// counters is the cache-private tally of lifetime usage.
//
// Misses are never stored. Only lookups, hits and evictions advance;
// a single source of truth means the derived miss count can never drift
// out of agreement with the stored counters.
type counters struct {
	lookups   uint64
	hits      uint64
	evictions uint64
}

// Stats is a point-in-time snapshot of cache usage. All fields are
// monotonically non-decreasing over the cache's lifetime.
type Stats struct {
	// Lookups counts every Find call, plus the internal lookup each
	// Insert performs.
	Lookups uint64

	// Hits counts the lookups that found a resident key.
	Hits uint64

	// Misses is derived at snapshot time as Lookups - Hits.
	Misses uint64

	// Evictions counts entries removed to satisfy the capacity bound.
	Evictions uint64
}

// Stats returns a snapshot of the usage counters.
//
// Pure read: neither the counters nor the recency ordering change.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Lookups:   c.stats.lookups,
		Hits:      c.stats.hits,
		Misses:    c.stats.lookups - c.stats.hits,
		Evictions: c.stats.evictions,
	}
}

// WriteStats writes the usage counters to w, one labeled value per line,
// in a fixed order: lookups, hits, evictions, misses.
func (c *Cache[K, V]) WriteStats(w io.Writer) error {
	s := c.Stats()
	_, err := fmt.Fprintf(w,
		"cache lookups  : %d\ncache hits     : %d\ncache evictions: %d\ncache misses   : %d\n",
		s.Lookups, s.Hits, s.Evictions, s.Misses)
	return err
}
