// File: internal/concurrency/ring.go
// Package concurrency implements the lock-free SPSC ring engine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with two independently owned
// monotonic cursors: head belongs to the producer, tail to the consumer.
// The cursors are never wrapped; slot i lives at i&mask. The only
// inter-thread ordering is the store/load pairing on the opposing cursor,
// which is what makes the fast path lock-free.

package concurrency

import "github.com/momentics/ringmaster/internal/cacheline"

// RingBuffer is a fixed-capacity SPSC ring buffer. One goroutine may call
// Push, one other goroutine may call Pop and Remove; nothing enforces this
// at runtime. A RingBuffer must not be copied after first use: the cursors
// and storage are tied to one memory location.
//
// The Go allocator does not cache-line-align heap objects, so the leading
// pad keeps head's whole cache line inside the buffer no matter where the
// allocator places it; head and tail are then a full line apart through
// their own trailing pads.
type RingBuffer[T any] struct {
	_    [cacheline.Size]byte
	head paddedUint64
	tail paddedUint64
	mask uint64
	data []T
}

// NewRingBuffer allocates a ring buffer. capacity must be a power of two;
// anything else is a construction failure and panics. The backing array is
// allocated exactly once and never moves or grows.
func NewRingBuffer[T any](capacity uint64) *RingBuffer[T] {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("concurrency: ring capacity must be a power of two")
	}
	return &RingBuffer[T]{
		mask: capacity - 1,
		data: make([]T, capacity),
	}
}

// Push appends item, returning false when the buffer is full. Producer
// only. The head load reads this goroutine's own cursor; the tail load
// synchronizes with the consumer's publishing store in Pop/Remove, so any
// slot the consumer has freed is visible here. The final head store
// publishes the slot write: the consumer cannot observe head+1 without
// also observing the completed slot.
func (r *RingBuffer[T]) Push(item T) bool {
	head := r.head.n.Load()
	tail := r.tail.n.Load()
	if head-tail >= uint64(len(r.data)) {
		return false
	}
	r.data[head&r.mask] = item
	r.head.n.Store(head + 1)
	return true
}

// Pop removes and returns the oldest item; ok is false when the buffer is
// empty. Consumer only. The slot is overwritten with the zero value before
// the tail store publishes it back to the producer, so an element is never
// reachable from both the slot and the caller.
func (r *RingBuffer[T]) Pop() (item T, ok bool) {
	tail := r.tail.n.Load()
	head := r.head.n.Load()
	if head == tail {
		return item, false
	}
	idx := tail & r.mask
	item = r.data[idx]
	var zero T
	r.data[idx] = zero
	r.tail.n.Store(tail + 1)
	return item, true
}

// Remove discards up to n oldest items and returns the count removed.
// Consumer only. Slot contents are left in place; only the logical window
// shrinks. Anything still referenced from a discarded slot stays live
// until the slot is overwritten or the buffer is dropped.
func (r *RingBuffer[T]) Remove(n int) int {
	if n <= 0 {
		return 0
	}
	tail := r.tail.n.Load()
	head := r.head.n.Load()
	avail := head - tail
	rm := uint64(n)
	if rm > avail {
		rm = avail
	}
	if rm > 0 {
		r.tail.n.Store(tail + rm)
	}
	return int(rm)
}

// Clear resets both cursors to zero. Not thread-safe: the caller must
// guarantee no Push, Pop or wait is in flight. Slot contents are not
// destroyed; stale elements remain in storage until overwritten.
func (r *RingBuffer[T]) Clear() {
	r.head.n.Store(0)
	r.tail.n.Store(0)
}

// Len returns the number of items currently buffered. The two cursor
// loads are not atomic as a pair; the result is valid only as of some
// instant between them.
func (r *RingBuffer[T]) Len() int {
	head := r.head.n.Load()
	tail := r.tail.n.Load()
	return int(head - tail)
}

// Cap returns the fixed capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// IsEmpty reports whether the buffer holds no items. Best-effort under
// concurrent mutation.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.head.n.Load() == r.tail.n.Load()
}

// IsFull reports whether the buffer is at capacity. Best-effort under
// concurrent mutation.
func (r *RingBuffer[T]) IsFull() bool {
	return r.head.n.Load()-r.tail.n.Load() >= uint64(len(r.data))
}
