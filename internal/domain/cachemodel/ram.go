//go:build linux

package cachemodel

import "golang.org/x/sys/unix"

// fallbackRAMMB is assumed when the system cannot be queried.
const fallbackRAMMB = 512

// SystemRAMMB returns the physical memory of the machine in megabytes.
func SystemRAMMB() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return fallbackRAMMB
	}
	total := uint64(info.Totalram) * uint64(info.Unit)
	if total == 0 {
		return fallbackRAMMB
	}
	return total / mb
}
