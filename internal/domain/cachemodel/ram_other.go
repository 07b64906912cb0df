//go:build !linux

package cachemodel

// fallbackRAMMB is assumed when the system cannot be queried.
const fallbackRAMMB = 512

// SystemRAMMB returns a conservative default on platforms without sysinfo.
func SystemRAMMB() uint64 {
	return fallbackRAMMB
}
