// File: internal/concurrency/ring_prop_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// State-machine property test: the ring must behave exactly like an
// unbounded FIFO truncated at its capacity. queue.Queue plays the model.

package concurrency

import (
	"testing"

	"github.com/eapache/queue"
	"pgregory.net/rapid"
)

func TestRingMatchesFIFOModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := uint64(1) << rapid.IntRange(0, 6).Draw(t, "capExp")
		r := NewRingBuffer[int](capacity)
		model := queue.New()

		steps := rapid.IntRange(1, 400).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0: // push
				v := rapid.Int().Draw(t, "val")
				ok := r.Push(v)
				if wantOK := model.Length() < int(capacity); ok != wantOK {
					t.Fatalf("Push accepted=%v with %d/%d items", ok, model.Length(), capacity)
				}
				if ok {
					model.Add(v)
				}
			case 1: // pop
				v, ok := r.Pop()
				if model.Length() == 0 {
					if ok {
						t.Fatalf("Pop produced %d from empty buffer", v)
					}
					break
				}
				if !ok {
					t.Fatalf("Pop failed with %d items buffered", model.Length())
				}
				if want := model.Remove().(int); v != want {
					t.Fatalf("Pop = %d, want %d (FIFO order)", v, want)
				}
			case 2: // bulk discard
				n := rapid.IntRange(0, int(capacity)+2).Draw(t, "n")
				removed := r.Remove(n)
				want := n
				if want > model.Length() {
					want = model.Length()
				}
				if removed != want {
					t.Fatalf("Remove(%d) = %d, want %d", n, removed, want)
				}
				for j := 0; j < removed; j++ {
					model.Remove()
				}
			case 3: // clear
				r.Clear()
				for model.Length() > 0 {
					model.Remove()
				}
			}

			if r.Len() != model.Length() {
				t.Fatalf("Len() = %d, model has %d", r.Len(), model.Length())
			}
			if r.IsEmpty() != (model.Length() == 0) {
				t.Fatalf("IsEmpty() = %v with %d items", r.IsEmpty(), model.Length())
			}
			if r.IsFull() != (model.Length() == int(capacity)) {
				t.Fatalf("IsFull() = %v with %d/%d items", r.IsFull(), model.Length(), capacity)
			}
		}

		// Drain and compare the tails of both FIFOs.
		for model.Length() > 0 {
			v, ok := r.Pop()
			if !ok {
				t.Fatalf("drain: Pop failed with %d items left", model.Length())
			}
			if want := model.Remove().(int); v != want {
				t.Fatalf("drain: Pop = %d, want %d", v, want)
			}
		}
	})
}
