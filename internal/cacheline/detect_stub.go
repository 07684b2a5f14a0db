//go:build !linux && !darwin && !windows

// File: internal/cacheline/detect_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without a cache-line query; callers use the default.

package cacheline

import "errors"

// detectPlatform reports that no probe is available.
func detectPlatform() (int, error) {
	return 0, errors.New("cacheline: detection not supported on this platform")
}
