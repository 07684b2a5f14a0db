//go:build windows

// File: internal/cacheline/detect_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows probe: walks GetLogicalProcessorInformation records and returns
// the line size of the first level-1 cache descriptor.

package cacheline

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const relationCache = 2

// cacheDescriptor mirrors CACHE_DESCRIPTOR from winnt.h.
type cacheDescriptor struct {
	Level         byte
	Associativity byte
	LineSize      uint16
	Size          uint32
	Type          uint32
}

// processorInformation mirrors SYSTEM_LOGICAL_PROCESSOR_INFORMATION on
// 64-bit targets; the trailing pad keeps the union at 16 bytes.
type processorInformation struct {
	ProcessorMask uintptr
	Relationship  uint32
	_             uint32
	Cache         cacheDescriptor
	_             [4]byte
}

var kernel32 = windows.NewLazySystemDLL("kernel32.dll")

var procGetLogicalProcessorInformation = kernel32.NewProc("GetLogicalProcessorInformation")

// detectPlatform queries the logical processor information table.
func detectPlatform() (int, error) {
	// Sizing call: fails with ERROR_INSUFFICIENT_BUFFER and reports the
	// byte count the record table needs.
	var needed uint32
	ret, _, _ := procGetLogicalProcessorInformation.Call(0, uintptr(unsafe.Pointer(&needed)))
	if ret != 0 || needed == 0 {
		return 0, errors.New("cacheline: GetLogicalProcessorInformation sizing call failed")
	}

	buf := make([]byte, needed)
	ret, _, err := procGetLogicalProcessorInformation.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&needed)),
	)
	if ret == 0 {
		return 0, fmt.Errorf("cacheline: GetLogicalProcessorInformation: %w", err)
	}

	stride := unsafe.Sizeof(processorInformation{})
	for off := uintptr(0); off+stride <= uintptr(needed); off += stride {
		info := (*processorInformation)(unsafe.Pointer(&buf[off]))
		if info.Relationship == relationCache && info.Cache.Level == 1 && info.Cache.LineSize > 0 {
			return int(info.Cache.LineSize), nil
		}
	}
	return 0, errors.New("cacheline: no level-1 cache descriptor found")
}
