package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetMissThenHit(t *testing.T) {
	c := New[int](4)
	key := Key{Source: "source", Language: "go", Strategy: "combined"}

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Put(key, 42)
	v, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestCache_ExactMatchOnSource(t *testing.T) {
	c := New[int](4)
	c.Put(Key{Source: "a", Language: "go", Strategy: "combined"}, 1)

	_, ok := c.Get(Key{Source: "b", Language: "go", Strategy: "combined"})
	assert.False(t, ok, "different source must not hit the same entry")

	_, ok = c.Get(Key{Source: "a", Language: "python", Strategy: "combined"})
	assert.False(t, ok, "different language must not hit the same entry")
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int](2)
	k1 := Key{Source: "1"}
	k2 := Key{Source: "2"}
	k3 := Key{Source: "3"}

	c.Put(k1, 1)
	c.Put(k2, 2)
	// Touch k1 so it's more recently used than k2.
	_, _ = c.Get(k1)
	c.Put(k3, 3)

	_, ok := c.Get(k2)
	assert.False(t, ok, "k2 should have been evicted as least-recently-used")

	_, ok = c.Get(k1)
	assert.True(t, ok)
	_, ok = c.Get(k3)
	assert.True(t, ok)

	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestCache_PutOverwritesExisting(t *testing.T) {
	c := New[int](4)
	key := Key{Source: "a"}
	c.Put(key, 1)
	c.Put(key, 2)

	v, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_NonPositiveCapacityFallsBackToDefault(t *testing.T) {
	c := New[int](0)
	assert.Equal(t, DefaultCapacity, c.capacity)
}
