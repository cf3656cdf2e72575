package huffpack

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

func lowOrderBits(u uint64, n uint) uint64 {
	if n >= 64 {
		return u
	}
	return u & ((uint64(1) << n) - 1)
}
