// Package cache implements a single-process, in-memory key–value cache
// with fixed capacity and least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked list)
//   - Provide O(1) Find/Insert via map index + recency-list pointers
//   - Track lifetime usage counters (lookups, hits, evictions) for diagnostics
//   - Stay synchronous and single-threaded; callers own synchronization
package cache
