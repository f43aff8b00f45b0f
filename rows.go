// rows implements ordered collections of tuples

package cartesian

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Rows is an ordered collection of tuples.  Unlike a relation, it may contain
// the same tuple more than once until Distinct is called.  None of the
// methods on Rows modify the receiver; each transformation returns a new
// collection.
type Rows []Tuple

// NewRows creates Rows from slices of values, one slice per row.
func NewRows(vals ...[]int64) Rows {
	rows := make(Rows, len(vals))
	for i, v := range vals {
		rows[i] = NewTuple(v...)
	}
	return rows
}

// Card returns the cardinality of the collection, counting duplicates.
func (rows Rows) Card() int {
	return len(rows)
}

// Deg returns the degree shared by every tuple in the collection, or a
// DegreeError naming the first tuple that disagrees with row 0.  An empty
// collection has degree 0.
func (rows Rows) Deg() (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	deg := rows[0].Deg()
	for i, tup := range rows[1:] {
		if tup.Deg() != deg {
			return 0, &DegreeError{Row: i + 1, Expected: deg, Found: tup.Deg()}
		}
	}
	return deg, nil
}

// Distinct returns the collection with repeated tuples removed.  The first
// occurrence of each tuple is kept, in its original order.
func (rows Rows) Distinct() Rows {
	// tuples are bucketed by hash and then compared by value, so hash
	// collisions cost a comparison but never merge distinct tuples.
	mem := make(map[uint64][]int, len(rows))
	res := make(Rows, 0, len(rows))
RowLoop:
	for _, tup := range rows {
		h := tup.Hash()
		for _, j := range mem[h] {
			if res[j].Equal(tup) {
				continue RowLoop
			}
		}
		mem[h] = append(mem[h], len(res))
		res = append(res, tup)
	}
	return res
}

// Select returns the tuples at the positions whose bit is set in mask, in the
// order they appear in rows.  It panics with a *MaskRangeError if mask
// selects a position at or beyond len(rows).
func (rows Rows) Select(mask uint64) Rows {
	if len(rows) < 64 && mask>>uint(len(rows)) != 0 {
		panic(&MaskRangeError{Mask: mask, Rows: len(rows)})
	}
	res := make(Rows, 0, PopCount(mask))
	for i := 0; mask != 0; i++ {
		if mask&1 == 1 {
			res = append(res, rows[i])
		}
		mask >>= 1
	}
	return res
}

// Without returns the collection with the tuples at the given positions
// removed.  Positions that are out of range or repeated are ignored.
func (rows Rows) Without(indices ...int) Rows {
	rem := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		rem[i] = struct{}{}
	}
	res := make(Rows, 0, len(rows))
	for i, tup := range rows {
		if _, skip := rem[i]; !skip {
			res = append(res, tup)
		}
	}
	return res
}

// Equal reports whether rows and rows2 contain equal tuples in the same
// order.
func (rows Rows) Equal(rows2 Rows) bool {
	if len(rows) != len(rows2) {
		return false
	}
	for i := range rows {
		if !rows[i].Equal(rows2[i]) {
			return false
		}
	}
	return true
}

// Column returns the set of distinct values found at position c across the
// collection.  Values are stored with their sign bit flipped so that the
// unsigned order of the bitmap matches the signed order of the values; use
// ColumnValues to get them back as integers.
func (rows Rows) Column(c int) *roaring64.Bitmap {
	bm := roaring64.New()
	for _, tup := range rows {
		bm.Add(encodeValue(tup.At(c)))
	}
	return bm
}

// ColumnValues returns the distinct values found at position c in ascending
// order.
func (rows Rows) ColumnValues(c int) []int64 {
	bm := rows.Column(c)
	vals := make([]int64, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		vals = append(vals, decodeValue(it.Next()))
	}
	return vals
}

// DistinctCounts returns the number of distinct values in each column.
func (rows Rows) DistinctCounts() ([]uint64, error) {
	deg, err := rows.Deg()
	if err != nil {
		return nil, err
	}
	counts := make([]uint64, deg)
	for c := range counts {
		counts[c] = rows.Column(c).GetCardinality()
	}
	return counts, nil
}
