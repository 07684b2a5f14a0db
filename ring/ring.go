// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thin wrapper exposing the internal SPSC engine as api.Ring.

package ring

import (
	"github.com/momentics/ringmaster/api"
	"github.com/momentics/ringmaster/internal/concurrency"
)

// SPSC[T] implements api.Ring[T] with power-of-two capacity.
type SPSC[T any] struct {
	*concurrency.RingBuffer[T]
}

// New creates a ring of the given capacity, which must be a power of two;
// any other value panics.
func New[T any](capacity uint64) *SPSC[T] {
	return &SPSC[T]{RingBuffer: concurrency.NewRingBuffer[T](capacity)}
}

// Ensure compile-time compliance.
var _ api.Ring[any] = (*SPSC[any])(nil)
