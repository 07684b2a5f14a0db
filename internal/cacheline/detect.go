// File: internal/cacheline/detect.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime probe for the cache-line size. Platform implementations live in
// detect_linux.go, detect_darwin.go, detect_windows.go behind build tags.

package cacheline

// Detect queries the operating system for the L1 data cache line size of
// the current machine. It returns an error when the platform offers no
// query or the query fails; callers should fall back to Size.
func Detect() (int, error) {
	return detectPlatform()
}
