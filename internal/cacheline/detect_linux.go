//go:build linux

// File: internal/cacheline/detect_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux probe: sysfs exposes the coherency line size of every cache level;
// index0 is the L1 data cache of cpu0.

package cacheline

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const sysfsCoherencyPath = "/sys/devices/system/cpu/cpu0/cache/index0/coherency_line_size"

// detectPlatform reads the coherency line size from sysfs.
func detectPlatform() (int, error) {
	raw, err := os.ReadFile(sysfsCoherencyPath)
	if err != nil {
		return 0, fmt.Errorf("cacheline: reading sysfs: %w", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("cacheline: parsing sysfs value: %w", err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("cacheline: sysfs reported %d bytes", v)
	}
	return v, nil
}
