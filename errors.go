// errors are the failure conditions of the completeness check and the
// minimal subset search.

package cartesian

import "fmt"

// DegreeError represents an error that occurs when the tuples of a row
// collection do not all have the same degree.  Row is the index of the first
// tuple whose degree differs from the degree of row 0.
type DegreeError struct {
	Row      int
	Expected int
	Found    int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("cartesian: row %d: expected degree %d, found %d", e.Row, e.Expected, e.Found)
}

// OverflowError represents an error that occurs when the product of distinct
// value counts does not fit in 64 bits.  Product is the running product
// before column Column's count, Factor, was multiplied in.
type OverflowError struct {
	Column  int
	Product uint64
	Factor  uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("cartesian: product overflow at column %d: %d * %d", e.Column, e.Product, e.Factor)
}

// DuplicateSolutionError represents an error that occurs when two different
// subsets of the same size are both complete before the search terminates.
// The search does not choose between them.
type DuplicateSolutionError struct {
	First  uint64
	Second uint64
	Size   int
}

func (e *DuplicateSolutionError) Error() string {
	return fmt.Sprintf("cartesian: duplicate complete subsets of size %d: %#b and %#b", e.Size, e.First, e.Second)
}

// RowLimitError represents an error that occurs when a row collection has
// more distinct rows than a subset mask can address.
type RowLimitError struct {
	Rows int
	Max  int
}

func (e *RowLimitError) Error() string {
	return fmt.Sprintf("cartesian: %d distinct rows, at most %d can be searched", e.Rows, e.Max)
}

// MaskRangeError is the panic value of Select when a mask has bits set at or
// beyond the number of rows it is applied to.
type MaskRangeError struct {
	Mask uint64
	Rows int
}

func (e *MaskRangeError) Error() string {
	return fmt.Sprintf("cartesian: mask %#b out of range for %d rows", e.Mask, e.Rows)
}
