// File: internal/cacheline/cacheline.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform cache-line size, as a build-time constant plus a runtime probe.
//
// All padding and alignment in the library is derived from Size. The
// constant lives in size.go, which cmd/clprobe can regenerate for targets
// whose coherency line differs from the 64-byte default.

package cacheline

//go:generate go run github.com/momentics/ringmaster/cmd/clprobe -out size.go
