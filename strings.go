// strings deals with string representation of tuples and row collections

package cartesian

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// String returns the values of the tuple separated by single spaces.  This is
// also the line format used for datasets on disk.
func (t Tuple) String() string {
	var b strings.Builder
	for i, v := range t.vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// GoString returns a text representation of the tuple as a constructor call.
func (t Tuple) GoString() string {
	var b strings.Builder
	b.WriteString("cartesian.NewTuple(")
	for i, v := range t.vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteString(")")
	return b.String()
}

// String returns the tuples one per line.
func (rows Rows) String() string {
	var b strings.Builder
	for i, tup := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(tup.String())
	}
	return b.String()
}

// PrettyPrint returns a boxed table of the rows with right aligned values and
// column headings c0, c1, ...  Tuples with a degree different from row 0 are
// truncated or padded with blanks.
func PrettyPrint(rows Rows) string {
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	w.Init(s, 1, 1, 1, ' ', tabwriter.AlignRight)

	deg := 0
	if len(rows) > 0 {
		deg = rows[0].Deg()
	}

	// make a spacer, to be replaced later
	for j := 0; j < deg; j++ {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	// heading
	for j := 0; j < deg; j++ {
		fmt.Fprintf(w, "|\t c%d ", j)
	}
	fmt.Fprintf(w, "\t|\n")

	for _, tup := range rows {
		for j := 0; j < deg; j++ {
			if j < tup.Deg() {
				fmt.Fprintf(w, "|\t %d ", tup.At(j))
			} else {
				fmt.Fprintf(w, "|\t  ")
			}
		}
		fmt.Fprintf(w, "\t|\n")
	}

	w.Flush()
	str := s.String()

	// every line has the same width, so the spacer line gives the separator
	lineWidth := strings.Index(str, "\n")
	sep := " " + strings.Replace(str[1:lineWidth], " ", "-", -1)
	return sep + str[lineWidth:lineWidth*2+2] + sep + str[lineWidth*2+1:] + sep
}
