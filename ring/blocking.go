// File: ring/blocking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Blocking wrapper: the full non-blocking surface plus PushWait/PopWait.

package ring

import (
	"github.com/momentics/ringmaster/api"
	"github.com/momentics/ringmaster/internal/concurrency"
)

// Blocking[T] implements api.Ring[T] and api.BlockingRing[T].
type Blocking[T any] struct {
	*concurrency.Waiter[T]
}

// NewBlocking creates a blocking ring. capacity must be a power of two.
// spinLimit bounds busy-polling before a waiter parks; 0 selects the
// default of 1024 attempts. stats may be nil, or point to caller-owned
// counters for spin/block observability.
func NewBlocking[T any](capacity, spinLimit uint64, stats *api.WaitStats) *Blocking[T] {
	rb := concurrency.NewRingBuffer[T](capacity)
	return &Blocking[T]{Waiter: concurrency.NewWaiter(rb, spinLimit, stats)}
}

// Ensure compile-time compliance.
var (
	_ api.Ring[any]         = (*Blocking[any])(nil)
	_ api.BlockingRing[any] = (*Blocking[any])(nil)
)
