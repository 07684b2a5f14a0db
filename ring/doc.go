// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package ring is the public surface of the ringmaster library: a
// fixed-capacity single-producer/single-consumer circular buffer with a
// lock-free fast path and an optional adaptive spin-then-block layer.
//
// SPSC[T] is the bare engine; Blocking[T] adds PushWait/PopWait. Exactly
// one goroutine may push and exactly one may pop for the lifetime of a
// buffer — the contract is documented, not enforced.
package ring
