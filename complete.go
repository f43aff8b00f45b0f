// complete decides whether a collection of rows is a full Cartesian product
// of the values it contains

package cartesian

// IsComplete reports whether rows is the Cartesian product of its own column
// domains, that is, whether its cardinality equals the product of the number
// of distinct values in each column.
//
// Duplicate tuples are counted, so a collection with a repeated tuple is not
// complete even when its distinct tuples are; call Distinct first if that is
// not wanted.  An empty collection is complete.
//
// IsComplete returns a *DegreeError if the tuples do not share a degree, and
// an *OverflowError if the product does not fit in a uint64.
func IsComplete(rows Rows) (bool, error) {
	counts, err := rows.DistinctCounts()
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return true, nil
	}
	prod := uint64(1)
	for c, n := range counts {
		next, over := mulCount(prod, n)
		if over {
			return false, &OverflowError{Column: c, Product: prod, Factor: n}
		}
		prod = next
	}
	return uint64(len(rows)) == prod, nil
}
