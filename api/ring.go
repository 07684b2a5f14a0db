// Package api
// Author: momentics@gmail.com
//
// Lock-free SPSC ring buffer contract: exactly one goroutine pushes,
// exactly one goroutine pops, for the lifetime of the buffer.

package api

// Ring is the non-blocking surface of a fixed-capacity SPSC ring buffer.
//
// Push may be called only by the single producer; Pop and Remove only by
// the single consumer. The discipline is a contract, not runtime-checked.
type Ring[T any] interface {
	// Push appends an item, returns false if the buffer is full.
	// Never blocks; no side effects on failure.
	Push(item T) bool
	// Pop removes and returns the oldest item; ok is false if empty.
	Pop() (item T, ok bool)
	// Remove discards up to n oldest items without retrieving them
	// and returns the count actually removed.
	Remove(n int) int
	// Clear resets the buffer to empty. Not safe under concurrent use.
	Clear()
	// Len returns the current number of items. Best-effort under
	// concurrent mutation.
	Len() int
	// Cap returns the fixed buffer capacity.
	Cap() int
	// IsEmpty reports whether the buffer holds no items. Best-effort.
	IsEmpty() bool
	// IsFull reports whether the buffer is at capacity. Best-effort.
	IsFull() bool
}
