//go:build darwin

// File: internal/cacheline/detect_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// macOS probe: hw.cachelinesize covers both Intel and Apple Silicon.

package cacheline

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// detectPlatform queries sysctl for the cache line size.
func detectPlatform() (int, error) {
	v, err := unix.SysctlUint64("hw.cachelinesize")
	if err != nil {
		return 0, fmt.Errorf("cacheline: sysctl hw.cachelinesize: %w", err)
	}
	if v == 0 {
		return 0, fmt.Errorf("cacheline: sysctl reported zero line size")
	}
	return int(v), nil
}
