//go:build !unix

package diskcache

import "errors"

// FreeSpace is not supported on this platform.
func FreeSpace(string) (uint64, error) {
	return 0, errors.New("free space query not supported on this platform")
}
