package cache

import (
	"container/list"
	"errors"
)

// ErrBadCapacity is returned by New for a non-positive capacity.
// Failing fast beats silently handing back a cache that can hold nothing.
var ErrBadCapacity = errors.New("cache: capacity must be positive")

// Cache is a fixed-capacity in-memory key–value cache with LRU eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list maintains recency
// ordering. Every resident key appears in both structures exactly once, and
// the map entry points at that key's list element.
//
// Ownership model:
// Cache is a single-owner, synchronous structure. It is NOT safe for
// concurrent use; a caller that needs concurrent access must wrap it in its
// own locking. No operation blocks or performs I/O.
type Cache[K comparable, V any] struct {
	capacity int

	items map[K]*list.Element
	lru   *list.List // Front = most recently used (MRU), Back = least recently used (LRU)

	stats counters
}

// entry is the value stored in the LRU list elements.
// We keep the key here because eviction starts from list nodes.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// New constructs an empty cache holding at most capacity entries.
//
// Capacity is fixed for the cache's lifetime. capacity <= 0 is a contract
// violation and returns ErrBadCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		lru:      list.New(),
	}, nil
}

// Find reads a key, marking it most recently used on a hit.
//
// Every call counts as a lookup attempt; a hit additionally counts as found
// and moves the key's list element to the front. A miss has no side effect
// beyond the attempt counter and is a normal outcome, not an error.
//
// The returned value is an owned copy. To mutate a resident value, call
// Insert with the same key; nothing pointing into cache-owned storage ever
// escapes the cache.
func (c *Cache[K, V]) Find(key K) (V, bool) {
	c.stats.lookups++

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.stats.hits++
	c.lru.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Insert writes/overwrites a key.
//
// Insert routes through Find first, so overwriting a resident key counts as
// a use: the key is promoted to MRU and the lookup counters advance exactly
// as they would for a caller-visible lookup. The overwrite path never
// evicts, because it adds no entry.
//
// A new key is pushed to the front; if that takes the cache over capacity,
// the single back (LRU) element is evicted. Capacity can only ever be
// exceeded by one, so at most one eviction happens per call, and Insert on
// a full cache always succeeds.
func (c *Cache[K, V]) Insert(key K, value V) {
	if _, ok := c.Find(key); ok {
		c.items[key].Value.(*entry[K, V]).value = value
		return
	}

	c.items[key] = c.lru.PushFront(&entry[K, V]{key: key, value: value})

	if len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Len returns the number of currently resident entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns keys in MRU -> LRU order.
//
// This is a debug/teaching helper used by the demo; it does not touch the
// recency ordering or the counters.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.lru.Len())
	for el := c.lru.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}

// evictOldest removes the back (LRU) element from both the list and the map.
func (c *Cache[K, V]) evictOldest() {
	el := c.lru.Back()
	if el == nil {
		return
	}

	e := el.Value.(*entry[K, V])
	c.lru.Remove(el)
	delete(c.items, e.key)
	c.stats.evictions++
}
