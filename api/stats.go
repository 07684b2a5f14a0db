// Package api
// Author: momentics@gmail.com
//
// Optional observability counters for the adaptive blocking layer.

package api

import "sync/atomic"

// WaitStats accumulates diagnostics from PushWait/PopWait. It is an
// injectable collaborator: pass a *WaitStats at construction to enable
// collection, or nil to disable it. The counters never influence buffer
// behaviour.
type WaitStats struct {
	// Spins counts failed push/pop attempts made while busy-polling.
	// Successful first attempts contribute nothing.
	Spins atomic.Uint64
	// Blocks counts transitions into a condition wait, one per park.
	Blocks atomic.Uint64
}
