// File: internal/concurrency/waiter_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tests for the adaptive spin-then-block layer: liveness once the
// opposite side makes progress, counter semantics, and a sustained
// blocking ping-pong. goleak guards against stuck waiters.

package concurrency

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/momentics/ringmaster/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// smallSpinLimit keeps the spin phase short so tests reach the parked
// state quickly.
const smallSpinLimit = 64

func TestPushWaitUnblocksWhenSlotFreed(t *testing.T) {
	stats := &api.WaitStats{}
	w := NewWaiter(NewRingBuffer[int](8), smallSpinLimit, stats)
	for i := 0; i < 8; i++ {
		require.True(t, w.Push(i))
	}

	done := make(chan struct{})
	go func() {
		w.PushWait(8)
		close(done)
	}()

	// Wait for the producer to exhaust its spin budget and park.
	require.Eventually(t, func() bool {
		return stats.Blocks.Load() >= 1
	}, 5*time.Second, time.Millisecond, "producer never entered a condition wait")

	got := w.PopWait()
	require.Equal(t, 0, got)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("PushWait did not return after a slot was freed")
	}

	require.Equal(t, uint64(1), stats.Blocks.Load(), "exactly one park per blocking transition")
	for want := 1; want <= 8; want++ {
		v, ok := w.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
}

func TestPopWaitUnblocksWhenItemArrives(t *testing.T) {
	stats := &api.WaitStats{}
	w := NewWaiter(NewRingBuffer[string](8), smallSpinLimit, stats)

	got := make(chan string, 1)
	go func() {
		got <- w.PopWait()
	}()

	require.Eventually(t, func() bool {
		return stats.Blocks.Load() >= 1
	}, 5*time.Second, time.Millisecond, "consumer never entered a condition wait")

	w.PushWait("ping")

	select {
	case v := <-got:
		require.Equal(t, "ping", v)
	case <-time.After(5 * time.Second):
		t.Fatal("PopWait did not return after an item arrived")
	}
	require.Equal(t, uint64(1), stats.Blocks.Load())
}

// TestWaitStatsSilentOnUncontendedTransfer: an immediately successful
// push or pop must contribute neither spins nor blocks.
func TestWaitStatsSilentOnUncontendedTransfer(t *testing.T) {
	stats := &api.WaitStats{}
	w := NewWaiter(NewRingBuffer[int](8), 0, stats)

	for i := 0; i < 100; i++ {
		w.PushWait(i)
		require.Equal(t, i, w.PopWait())
	}

	require.Zero(t, stats.Spins.Load(), "spin counter must not move on uncontended transfers")
	require.Zero(t, stats.Blocks.Load(), "block counter must not move on uncontended transfers")
}

func TestSpinCounterMovesOnlyUnderContention(t *testing.T) {
	stats := &api.WaitStats{}
	w := NewWaiter(NewRingBuffer[int](8), smallSpinLimit, stats)
	for i := 0; i < 8; i++ {
		require.True(t, w.Push(i))
	}

	done := make(chan struct{})
	go func() {
		w.PushWait(8) // full: must spin before it can succeed
		close(done)
	}()

	require.Eventually(t, func() bool {
		return stats.Blocks.Load() >= 1 || stats.Spins.Load() > 0
	}, 5*time.Second, time.Millisecond)

	_ = w.PopWait()
	<-done
	require.Positive(t, stats.Spins.Load()+stats.Blocks.Load(),
		"a contended push must be visible in the counters")
}

func TestNewWaiterDefaultSpinLimit(t *testing.T) {
	w := NewWaiter(NewRingBuffer[int](2), 0, nil)
	require.Equal(t, uint64(DefaultSpinLimit), w.spinLimit)
}

// TestBlockingPingPong keeps both sides alternating through the parked
// path: a capacity-1 ring forces every transfer into lockstep.
func TestBlockingPingPong(t *testing.T) {
	const total = 100_000
	w := NewWaiter(NewRingBuffer[int](1), smallSpinLimit, nil)

	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for want := 0; want < total; want++ {
			if got := w.PopWait(); got != want {
				errc <- fmt.Errorf("received %d, want %d", got, want)
				return
			}
		}
	}()

	for i := 0; i < total; i++ {
		w.PushWait(i)
	}
	if err, ok := <-errc; ok {
		t.Fatal(err)
	}
	require.True(t, w.IsEmpty())
}
