// Package arena provides an allocator for short-lived []T scratch buffers;
// internal/hybrid uses it for the pattern matcher's []patterns.Match
// buffers. It is a tiered sync.Pool allocator in the same
// style as the teacher's generic slab allocator, retuned for the small,
// bursty allocations a single extraction run makes rather than for a
// long-lived trigram index.
package arena

import (
	"sync"
	"sync/atomic"
)

// TierConfig defines one size class in the arena.
type TierConfig struct {
	Capacity int
	Weight   float64
}

// DefaultTiers fits the shape of one extraction run: a handful of
// declarations and constraints per file, rarely more than a few hundred.
var DefaultTiers = []TierConfig{
	{Capacity: 8, Weight: 0.35},
	{Capacity: 16, Weight: 0.30},
	{Capacity: 32, Weight: 0.20},
	{Capacity: 64, Weight: 0.10},
	{Capacity: 128, Weight: 0.05},
}

type tier[T any] struct {
	capacity int
	pool     sync.Pool
}

// Stats tracks allocator behavior for observability, mirroring the
// teacher's AllocatorStats shape.
type Stats struct {
	Gets       int64
	Puts       int64
	PoolHits   int64
	PoolMisses int64
}

// Arena is a generic allocator of []T buffers. In internal/hybrid each
// Orchestrator owns one Arena and reuses it across that Orchestrator's
// Extract calls; it is never shared between Orchestrators and is discarded
// with its owner (not explicitly freed — Go's GC reclaims it).
type Arena[T any] struct {
	tiers []*tier[T]
	stats Stats
}

// New creates an Arena with the given tier configuration.
func New[T any](configs []TierConfig) *Arena[T] {
	a := &Arena[T]{tiers: make([]*tier[T], len(configs))}
	for i, cfg := range configs {
		capacity := cfg.Capacity
		a.tiers[i] = &tier[T]{
			capacity: capacity,
			pool: sync.Pool{
				New: func() any {
					return make([]T, 0, capacity)
				},
			},
		}
	}
	return a
}

// NewDefault creates an Arena using DefaultTiers.
func NewDefault[T any]() *Arena[T] {
	return New[T](DefaultTiers)
}

// Get returns a zero-length slice with capacity >= requested, pulled from
// the smallest tier that fits, or allocated fresh if no tier is large
// enough or the pool is empty.
func (a *Arena[T]) Get(capacity int) []T {
	if capacity <= 0 {
		return make([]T, 0)
	}
	atomic.AddInt64(&a.stats.Gets, 1)

	for _, t := range a.tiers {
		if t.capacity < capacity {
			continue
		}
		v := t.pool.Get()
		if buf, ok := v.([]T); ok {
			atomic.AddInt64(&a.stats.PoolHits, 1)
			return buf[:0]
		}
	}
	atomic.AddInt64(&a.stats.PoolMisses, 1)
	return make([]T, 0, capacity)
}

// Put returns a buffer to its matching tier so a later Get can reuse it.
// Buffers whose capacity does not match any configured tier are dropped
// (left for the GC) rather than forced into the wrong pool.
func (a *Arena[T]) Put(buf []T) {
	if buf == nil {
		return
	}
	atomic.AddInt64(&a.stats.Puts, 1)
	c := cap(buf)
	for _, t := range a.tiers {
		if t.capacity == c {
			t.pool.Put(buf[:0])
			return
		}
	}
}

// Stats returns a snapshot of allocator counters.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Gets:       atomic.LoadInt64(&a.stats.Gets),
		Puts:       atomic.LoadInt64(&a.stats.Puts),
		PoolHits:   atomic.LoadInt64(&a.stats.PoolHits),
		PoolMisses: atomic.LoadInt64(&a.stats.PoolMisses),
	}
}
