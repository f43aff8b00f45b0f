package batch

import (
	"errors"

	"github.com/jonlawlor/cartesian"
)

// Kind classifies why a case failed.
type Kind int

const (
	// KindOther is any failure not covered below.
	KindOther Kind = iota
	// KindShape is a dataset whose tuples do not share a degree.
	KindShape
	// KindOverflow is a product of distinct counts that does not fit in 64
	// bits.
	KindOverflow
	// KindDuplicate is a search that found two complete subsets of the same
	// size.
	KindDuplicate
	// KindLimit is a dataset with too many distinct rows to search.
	KindLimit
	// KindIO is a failure to read or write case files.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindOverflow:
		return "overflow"
	case KindDuplicate:
		return "duplicate"
	case KindLimit:
		return "limit"
	case KindIO:
		return "io"
	default:
		return "other"
	}
}

// ioError marks errors from the case store.
type ioError struct {
	err error
}

func (e *ioError) Error() string { return e.err.Error() }

func (e *ioError) Unwrap() error { return e.err }

// KindOf classifies err.
func KindOf(err error) Kind {
	var (
		de *cartesian.DegreeError
		oe *cartesian.OverflowError
		se *cartesian.DuplicateSolutionError
		le *cartesian.RowLimitError
		ie *ioError
	)
	switch {
	case errors.As(err, &de):
		return KindShape
	case errors.As(err, &oe):
		return KindOverflow
	case errors.As(err, &se):
		return KindDuplicate
	case errors.As(err, &le):
		return KindLimit
	case errors.As(err, &ie):
		return KindIO
	default:
		return KindOther
	}
}

// Failure records a case that could not be solved.
type Failure struct {
	ID   string
	Kind Kind
	Err  error
}

// Report is the outcome of a run.
type Report struct {
	// Passed lists the ids of solved cases, in the order they were run.
	Passed []string

	// Failures lists the cases that failed, in the order they were run.
	Failures []Failure
}

// Total returns the number of cases that were run.
func (r Report) Total() int {
	return len(r.Passed) + len(r.Failures)
}

// FailedIDs returns the ids of the failed cases.
func (r Report) FailedIDs() []string {
	ids := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		ids[i] = f.ID
	}
	return ids
}

func (r *Report) add(id string, err error) {
	if err != nil {
		r.Failures = append(r.Failures, Failure{ID: id, Kind: KindOf(err), Err: err})
		return
	}
	r.Passed = append(r.Passed, id)
}
