package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingQueue_FIFOOrder(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, q.Len())
}

func TestRingQueue_DequeueEmptyReturnsFalse(t *testing.T) {
	q := New[string]()
	_, ok := q.Dequeue()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestRingQueue_GrowsPastInitialCapacity(t *testing.T) {
	q := New[int]()
	const n = 100
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, n, q.Len())

	for i := 0; i < n; i++ {
		v, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.IsEmpty())
}

func TestRingQueue_WrapsAroundBuffer(t *testing.T) {
	q := New[int]()
	// Fill and drain repeatedly so head/tail wrap around the backing array
	// without triggering a grow, exercising the modulo arithmetic.
	for round := 0; round < 5; round++ {
		q.Enqueue(round)
		q.Enqueue(round * 10)
		v1, _ := q.Dequeue()
		v2, _ := q.Dequeue()
		assert.Equal(t, round, v1)
		assert.Equal(t, round*10, v2)
	}
	assert.True(t, q.IsEmpty())
}

func TestRingQueue_NewWithCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	q := NewWithCapacity[int](10)
	assert.Equal(t, 16, len(q.buf))
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 10, q.Len())
}
