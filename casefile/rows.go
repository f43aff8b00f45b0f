// Package casefile reads and writes datasets as flat text: one tuple per
// line, values separated by single spaces, no header.
package casefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jonlawlor/cartesian"
)

// ValueError represents an error that occurs when a field of a dataset file
// is not an integer.
type ValueError struct {
	Line  int
	Field int
	Text  string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("casefile: line %d, field %d: invalid value %q", e.Line, e.Field, e.Text)
}

func (e *ValueError) Unwrap() error { return e.Err }

// WriteRows writes rows to w in the dataset line format.
func WriteRows(w io.Writer, rows cartesian.Rows) error {
	cw := newWriter(w)
	for _, tup := range rows {
		rec := make([]string, tup.Deg())
		for i := range rec {
			rec[i] = strconv.FormatInt(tup.At(i), 10)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("casefile: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("casefile: flush: %w", err)
	}
	return nil
}

// ReadRows reads a dataset from r.  Blank lines are skipped.  Lines may have
// different numbers of values; use Rows.Deg to check the result.
//
// Values must be separated by exactly one space.  A leading or trailing space,
// or two spaces in a row, delimit an empty field, which is reported as a
// *ValueError with an empty Text.
func ReadRows(r io.Reader) (cartesian.Rows, error) {
	cr := newReader(r)
	rows := cartesian.Rows{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("casefile: read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		vals := make([]int64, len(rec))
		for i, s := range rec {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, &ValueError{Line: line, Field: i, Text: s, Err: err}
			}
			vals[i] = v
		}
		rows = append(rows, cartesian.NewTuple(vals...))
	}
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	return cw
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = ' '
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}
