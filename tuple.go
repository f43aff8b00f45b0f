// tuple implements the fixed width integer tuples that make up the rows of a
// dataset

package cartesian

import "math/bits"

// Tuple is an immutable ordered sequence of integers.  Tuples are compared by
// value, not by identity.
type Tuple struct {
	vals []int64
}

// NewTuple creates a Tuple from the given values.  The values are copied, so
// later changes to vals are not visible through the tuple.
func NewTuple(vals ...int64) Tuple {
	t := Tuple{vals: make([]int64, len(vals))}
	copy(t.vals, vals)
	return t
}

// Deg returns the degree of the tuple, which is the number of values in it.
func (t Tuple) Deg() int {
	return len(t.vals)
}

// At returns the value at position i.
func (t Tuple) At(i int) int64 {
	return t.vals[i]
}

// Values returns a copy of the values in the tuple.
func (t Tuple) Values() []int64 {
	vals := make([]int64, len(t.vals))
	copy(vals, t.vals)
	return vals
}

// Equal reports whether t and t2 have the same degree and the same values in
// the same positions.
func (t Tuple) Equal(t2 Tuple) bool {
	if len(t.vals) != len(t2.vals) {
		return false
	}
	for i, v := range t.vals {
		if t2.vals[i] != v {
			return false
		}
	}
	return true
}

// Hash returns a hash of the tuple that is consistent with Equal.  It starts
// from the degree and folds each value in with xor, rotating between values so
// that the position of a value matters.
func (t Tuple) Hash() uint64 {
	h := uint64(len(t.vals))
	for _, v := range t.vals {
		h = bits.RotateLeft64(h, 7) ^ uint64(v)
	}
	return h
}
