// product implements the Cartesian product of column domains.  It is the
// join of relations that share no attributes, so every combination of values
// appears exactly once.

package cartesian

// Set is an ordered set of integers, used as the domain of one column.  The
// order of a Set is the order in which its values were first given, and it is
// the order Product enumerates them in.
type Set []int64

// NewSet creates a Set from vals, dropping any value that was already given.
func NewSet(vals ...int64) Set {
	mem := make(map[int64]struct{}, len(vals))
	s := make(Set, 0, len(vals))
	for _, v := range vals {
		if _, dup := mem[v]; dup {
			continue
		}
		mem[v] = struct{}{}
		s = append(s, v)
	}
	return s
}

// Product returns every tuple that takes its i'th value from sets[i].  Tuples
// are in lexicographic order of the positions of their values within each
// set, so the last column varies fastest.
//
// Product of no sets is an empty collection, not a collection with a single
// tuple of degree zero.  The number of tuples returned is the product of the
// sizes of the sets; Product panics with an *OverflowError if that does not
// fit in an int.
func Product(sets ...Set) Rows {
	if len(sets) == 0 {
		return Rows{}
	}

	// strides[i] is the number of consecutive rows that share a value in
	// column i.
	strides := make([]int, len(sets))
	card := 1
	for i := len(sets) - 1; i >= 0; i-- {
		strides[i] = card
		n, over := mulCount(uint64(card), uint64(len(sets[i])))
		if over || n > uint64(maxInt) {
			panic(&OverflowError{Column: i, Product: uint64(card), Factor: uint64(len(sets[i]))})
		}
		card = int(n)
	}

	rows := make(Rows, card)
	for r := range rows {
		vals := make([]int64, len(sets))
		for i, s := range sets {
			vals[i] = s[(r/strides[i])%len(s)]
		}
		// vals is not shared, so it can be used without the copy in NewTuple
		rows[r] = Tuple{vals: vals}
	}
	return rows
}

const maxInt = int(^uint(0) >> 1)
