// minimal searches a row collection for a subset that is a complete
// Cartesian product

package cartesian

// Solution is the result of a search for a complete subset.
type Solution struct {
	// Rows is the distinct collection the search ran over.  Mask is only
	// meaningful relative to the order of these rows.
	Rows Rows

	// Mask selects the complete subset from Rows.
	Mask uint64

	// Size is the number of rows in the complete subset.
	Size int

	// Examined is the number of subsets that were tested for completeness.
	// It is zero when Rows was complete to begin with.
	Examined int
}

// Subset returns the rows selected by the solution's mask.
func (s Solution) Subset() Rows {
	return s.Rows.Select(s.Mask)
}

// FindMinimal removes duplicate tuples from source and searches the result
// for a complete subset.
//
// If the distinct rows are already complete, all of them are returned.
// Otherwise subsets are tested in the order given by Masks, from the largest
// down, and the first complete subset found is the answer.  The search stops
// at the first subset smaller than the answer.  If another subset of the same
// size as the answer is also complete, the answer is ambiguous and
// FindMinimal returns a *DuplicateSolutionError instead of choosing one.
//
// Since subsets are visited largest first, the answer is the largest complete
// proper subset, which is not always the smallest one.
//
// FindMinimal returns a *RowLimitError if there are more than MaxRows
// distinct rows, and passes on any error from IsComplete.
func FindMinimal(source Rows) (Solution, error) {
	rows := source.Distinct()
	n := len(rows)
	if n > MaxRows {
		return Solution{}, &RowLimitError{Rows: n, Max: MaxRows}
	}

	complete, err := IsComplete(rows)
	if err != nil {
		return Solution{}, err
	}
	if complete {
		return Solution{Rows: rows, Mask: uint64(1)<<uint(n) - 1, Size: n}, nil
	}

	sol := Solution{Rows: rows}
	for mask := range Masks(n) {
		size := PopCount(mask)
		if sol.Mask != 0 && size < sol.Size {
			break
		}
		sol.Examined++
		complete, err := IsComplete(rows.Select(mask))
		if err != nil {
			return Solution{}, err
		}
		if !complete {
			continue
		}
		if sol.Mask != 0 {
			return Solution{}, &DuplicateSolutionError{First: sol.Mask, Second: mask, Size: size}
		}
		sol.Mask = mask
		sol.Size = size
	}
	return sol, nil
}
