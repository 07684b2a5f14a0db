// File: internal/concurrency/waiter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Adaptive spin-then-block layer over RingBuffer. A short bounded spin
// amortizes the fixed cost of a kernel-visible wait, which dominates for
// transient contention; only sustained contention pays for a condition
// wait. The layer touches the ring exclusively through its public
// operations and never looks at slot storage.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/ringmaster/api"
)

// DefaultSpinLimit is the number of failed attempts before a waiter parks.
const DefaultSpinLimit = 1024

// yieldMask throttles runtime.Gosched to one call per 1024 failed spins.
const yieldMask = 1024 - 1

// Waiter wraps a RingBuffer with blocking PushWait/PopWait. The SPSC
// discipline carries over: at most one goroutine may ever wait on each
// side, which is why a single Signal suffices for every wakeup.
//
// The embedded ring keeps the whole non-blocking surface available; a
// successful PushWait/PopWait takes exactly one non-blocking attempt plus
// one atomic flag load and never touches the mutex.
type Waiter[T any] struct {
	*RingBuffer[T]

	spinLimit uint64
	stats     *api.WaitStats

	mu       sync.Mutex
	notEmpty sync.Cond
	notFull  sync.Cond

	// Set under mu before the parked side re-checks its predicate. The
	// opposite side reads it to decide whether a wakeup is needed at
	// all, keeping the uncontended path free of lock traffic.
	producerParked atomic.Bool
	consumerParked atomic.Bool
}

// NewWaiter layers blocking semantics over ring. spinLimit 0 selects
// DefaultSpinLimit. stats may be nil to disable collection; the counters
// are diagnostic only and never alter buffer behaviour.
func NewWaiter[T any](ring *RingBuffer[T], spinLimit uint64, stats *api.WaitStats) *Waiter[T] {
	if spinLimit == 0 {
		spinLimit = DefaultSpinLimit
	}
	w := &Waiter[T]{
		RingBuffer: ring,
		spinLimit:  spinLimit,
		stats:      stats,
	}
	w.notEmpty.L = &w.mu
	w.notFull.L = &w.mu
	return w
}

// PushWait appends item, retrying until it succeeds. Producer only.
func (w *Waiter[T]) PushWait(item T) {
	var spins uint64
	for {
		if w.Push(item) {
			w.finish(spins, &w.consumerParked, &w.notEmpty)
			return
		}
		spins++
		if spins < w.spinLimit {
			if spins&yieldMask == 0 {
				runtime.Gosched()
			}
			continue
		}
		w.park(&w.producerParked, &w.notFull, w.IsFull)
		spins = 0
	}
}

// PopWait removes and returns the oldest item, retrying until one is
// available. Consumer only.
func (w *Waiter[T]) PopWait() T {
	var spins uint64
	for {
		if item, ok := w.Pop(); ok {
			w.finish(spins, &w.producerParked, &w.notFull)
			return item
		}
		spins++
		if spins < w.spinLimit {
			if spins&yieldMask == 0 {
				runtime.Gosched()
			}
			continue
		}
		w.park(&w.consumerParked, &w.notEmpty, w.IsEmpty)
		spins = 0
	}
}

// finish records accumulated spins and wakes the opposite side if it is
// parked. The parked check is a single atomic load, so a transfer with no
// sleeper on the other side stays lock-free. When the flag is set, the
// empty lock/unlock bridges the gap between the sleeper's predicate check
// and its wait: the sleeper either saw our cursor store during the check,
// or is already inside Wait when Signal fires. Without the bridge the
// Signal could land between the two and be lost.
func (w *Waiter[T]) finish(spins uint64, parked *atomic.Bool, cond *sync.Cond) {
	if w.stats != nil && spins != 0 {
		w.stats.Spins.Add(spins)
	}
	if !parked.Load() {
		return
	}
	w.mu.Lock()
	//lint:ignore SA2001 empty critical section orders the wakeup after the sleeper's predicate check
	w.mu.Unlock()
	cond.Signal()
}

// park blocks the calling side on cond until pred turns false. Spurious
// wakeups are tolerated by re-checking pred in a loop.
func (w *Waiter[T]) park(parked *atomic.Bool, cond *sync.Cond, pred func() bool) {
	if w.stats != nil {
		w.stats.Blocks.Add(1)
	}
	w.mu.Lock()
	parked.Store(true)
	for pred() {
		cond.Wait()
	}
	parked.Store(false)
	w.mu.Unlock()
}
