package zx0

import "math/bits"

// gammaBits returns the number of bits the interlaced Elias gamma code
// for value occupies: 2*floor(log2(value)) + 1. value must be >= 1.
func gammaBits(value int) int {
	return 2*bits.Len(uint(value)) - 1
}
