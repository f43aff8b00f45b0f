package cartesian

import "math/bits"

// signBit is flipped when storing values in unsigned bitmaps, which maps the
// signed order of int64 onto the unsigned order of uint64.
const signBit = 1 << 63

func encodeValue(v int64) uint64 {
	return uint64(v) ^ signBit
}

func decodeValue(u uint64) int64 {
	return int64(u ^ signBit)
}

// mulCount multiplies two counts, reporting whether the result overflowed.
func mulCount(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}
