package shared

import (
	mathbits "math/bits"

	"github.com/ricochet2200/go-disk-usage/du"
)

// NumBits returns the minimal number of bits required to represent val.
func NumBits(val uint64) int {
	return mathbits.Len64(val)
}

// AvailableSpace returns the number of bytes available to the current user
// on the volume containing path.
func AvailableSpace(path string) uint64 {
	usage := du.NewDiskUsage(path)
	return usage.Available()
}
