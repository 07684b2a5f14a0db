// File: internal/concurrency/padding.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cache-line padded cursor. head and tail each occupy a full cache line
// so the producer and consumer never invalidate each other's line when
// advancing their own cursor (false-sharing avoidance). The padding is a
// performance invariant of the design, not a hint.

package concurrency

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/ringmaster/internal/cacheline"
)

// paddedUint64 is one monotonically increasing cursor padded out to
// cacheline.Size bytes.
type paddedUint64 struct {
	n atomic.Uint64
	_ [cacheline.Size - unsafe.Sizeof(atomic.Uint64{})]byte
}
