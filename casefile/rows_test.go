package casefile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonlawlor/cartesian"
)

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	rows := cartesian.NewRows([]int64{1, 2, 3}, []int64{-4, 50, 6})
	require.NoError(t, WriteRows(&buf, rows))
	assert.Equal(t, "1 2 3\n-4 50 6\n", buf.String())
}

func TestWriteRowsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, cartesian.Rows{}))
	assert.Empty(t, buf.String())
}

func TestReadRows(t *testing.T) {
	in := "1 2\n\n3 4\n5 6"
	rows, err := ReadRows(strings.NewReader(in))
	require.NoError(t, err)
	want := cartesian.NewRows([]int64{1, 2}, []int64{3, 4}, []int64{5, 6})
	assert.True(t, rows.Equal(want), "got %v", rows)
}

func TestReadRowsRoundTrip(t *testing.T) {
	rows := cartesian.Product(cartesian.NewSet(7, -1, 3), cartesian.NewSet(100, 2))
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows))

	res, err := ReadRows(&buf)
	require.NoError(t, err)
	assert.True(t, res.Equal(rows))
}

func TestReadRowsMixedDegree(t *testing.T) {
	// the reader does not enforce a degree, the completeness check does
	rows, err := ReadRows(strings.NewReader("1 2\n3\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, err = cartesian.IsComplete(rows)
	var de *cartesian.DegreeError
	assert.ErrorAs(t, err, &de)
}

func TestReadRowsInvalid(t *testing.T) {
	fix := []struct {
		in    string
		line  int
		field int
		text  string
	}{
		{"1 2\n3 x\n", 2, 1, "x"},
		{"1.5\n", 1, 0, "1.5"},
		{"1 2\n\n4  5\n", 3, 1, ""},
		{"1 2 \n", 1, 2, ""},
		{" 1 2\n", 1, 0, ""},
	}
	for i, dt := range fix {
		_, err := ReadRows(strings.NewReader(dt.in))
		var ve *ValueError
		if !assert.ErrorAs(t, err, &ve, "%d. %q", i, dt.in) {
			continue
		}
		assert.Equal(t, dt.line, ve.Line, "%d. line", i)
		assert.Equal(t, dt.field, ve.Field, "%d. field", i)
		assert.Equal(t, dt.text, ve.Text, "%d. text", i)
	}
}
