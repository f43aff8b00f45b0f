// Package cartesian generates and checks datasets that are Cartesian products
// of small integer domains, and searches partial datasets for subsets that
// are complete products.
//
// # Basics
//
// A dataset is an ordered collection of tuples of integers, all with the same
// degree.  The domain of a column is the set of distinct values that appear
// in it.  A dataset is complete when it is the Cartesian product of its own
// column domains, which (for a dataset without repeated tuples) is the case
// exactly when its cardinality equals the product of the sizes of the column
// domains:
//
//	(1,2) (1,3) (2,2) (2,3)   complete: 4 == 2 * 2
//	(1,2) (1,3) (2,2)         not complete: 3 != 2 * 2
//
// The operations are:
//
// Product, which builds the complete dataset over a list of column domains.
//
// IsComplete, which checks the cardinality of a dataset against the product of
// its distinct value counts.
//
// Masks, which enumerates the subsets of a dataset as bit masks, largest
// subsets first.
//
// FindMinimal, which removes repeated tuples and searches the subsets of a
// dataset for a complete one.
//
// Rows.Select, which maps a mask found by FindMinimal back to tuples.
//
// The search is exponential in the number of distinct rows, and masks are 64
// bit integers, so FindMinimal refuses datasets with more than MaxRows
// distinct tuples.  Callers should keep datasets far smaller than that.
//
// Random datasets can be generated with the gen subpackage, written to and
// read from disk with casefile, and processed in bulk with batch.
package cartesian

// variable naming conventions
//
// rows, rows1, rows2, ... all represent row collections.
//
// tup, tup1, tup2, ... all represent tuples.
//
// deg is the degree of a tuple or of every tuple in a collection.
//
// mask is a subset of a row collection, where bit i selects row i.
