// Package api
// Author: momentics@gmail.com
//
// Blocking ring buffer contract layered over the non-blocking Ring surface.

package api

// BlockingRing adds adaptive spin-then-block variants of Push and Pop.
//
// Both calls retry until they succeed; there is no timeout or cancellation
// parameter. A caller that needs bounded waiting must arrange it externally,
// for example by having the opposite side deliver a sentinel value.
type BlockingRing[T any] interface {
	// PushWait appends an item, spinning briefly and then parking on a
	// condition wait until space is available.
	PushWait(item T)
	// PopWait removes and returns the oldest item, spinning briefly and
	// then parking until an item arrives.
	PopWait() T
}
