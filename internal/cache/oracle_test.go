package cache

import (
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/stretchr/testify/require"
)

// TestMatchesReferenceLRU drives the cache and hashicorp's simplelru through
// the same randomized workload and checks they agree on residency, values,
// size and final recency order at every step.
func TestMatchesReferenceLRU(t *testing.T) {
	const (
		capacity = 8
		steps    = 5000
		keySpace = 32
	)

	c, err := New[int, int](capacity)
	require.NoError(t, err)

	ref, err := simplelru.NewLRU[int, int](capacity, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < steps; i++ {
		key := rng.Intn(keySpace)
		if rng.Intn(2) == 0 {
			c.Insert(key, i)
			ref.Add(key, i)
		} else {
			got, ok := c.Find(key)
			want, refOK := ref.Get(key)
			require.Equal(t, refOK, ok, "step %d key %d", i, key)
			if ok {
				require.Equal(t, want, got, "step %d key %d", i, key)
			}
		}
		require.Equal(t, ref.Len(), c.Len(), "step %d", i)
	}

	// simplelru reports keys oldest-first; Keys reports MRU first.
	refKeys := ref.Keys()
	keys := c.Keys()
	require.Len(t, keys, len(refKeys))
	for i, k := range keys {
		require.Equal(t, refKeys[len(refKeys)-1-i], k, "position %d", i)
	}
}
