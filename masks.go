// masks enumerates subsets of a row collection as bit masks

package cartesian

import (
	"fmt"
	"iter"
	"math/bits"
)

// MaxRows is the largest number of rows whose subsets Masks can enumerate.
const MaxRows = 63

// PopCount returns the number of set bits in mask.
func PopCount(mask uint64) int {
	return bits.OnesCount64(mask)
}

// Masks returns the non-empty subsets of n items as bit masks, where bit i
// stands for item i.  The masks with the most bits set come first, and masks
// with the same number of bits set are in ascending order, so Masks(2) yields
// 3, 1, 2.  Every mask in [1, 2^n-1] is yielded exactly once.
//
// The sequence is computed lazily and can be ranged over more than once.
// Masks panics if n is negative or greater than MaxRows.
func Masks(n int) iter.Seq[uint64] {
	if n < 0 || n > MaxRows {
		panic(fmt.Sprintf("cartesian: cannot enumerate subsets of %d rows", n))
	}
	limit := uint64(1) << uint(n)
	return func(yield func(uint64) bool) {
		for k := n; k > 0; k-- {
			// masks with k bits set, in ascending order, by taking the
			// next larger integer with the same popcount each step.
			for mask := uint64(1)<<uint(k) - 1; mask < limit; mask = nextCombination(mask) {
				if !yield(mask) {
					return
				}
			}
		}
	}
}

// nextCombination returns the smallest integer greater than x with the same
// number of bits set.  x must not be zero.
func nextCombination(x uint64) uint64 {
	c := x & -x
	r := x + c
	return (((r ^ x) >> 2) / c) | r
}
