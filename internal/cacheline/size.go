// File: internal/cacheline/size.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Regenerate with `go generate ./internal/cacheline` (runs cmd/clprobe).

package cacheline

// Size is the coherency line size, in bytes, assumed by all padding in
// this module. 64 is correct for current x86-64 and most arm64 parts;
// run cmd/clprobe on the deployment host to verify.
const Size = 64
