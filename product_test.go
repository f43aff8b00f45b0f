package cartesian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	assert.Equal(t, Set{3, 1, 2}, NewSet(3, 1, 3, 2, 1))
	assert.Equal(t, Set{}, NewSet())
}

func TestProduct(t *testing.T) {
	res := Product(NewSet(1, 2), NewSet(1, 2))
	want := NewRows(
		[]int64{1, 1},
		[]int64{1, 2},
		[]int64{2, 1},
		[]int64{2, 2},
	)
	if !res.Equal(want) {
		t.Errorf("Product({1,2}, {1,2}) = %v, want %v", res, want)
	}
}

func TestProductOrder(t *testing.T) {
	// values are enumerated in the order of each set, not in sorted order
	res := Product(NewSet(9, 4), NewSet(6), NewSet(2, 8, 5))
	want := NewRows(
		[]int64{9, 6, 2},
		[]int64{9, 6, 8},
		[]int64{9, 6, 5},
		[]int64{4, 6, 2},
		[]int64{4, 6, 8},
		[]int64{4, 6, 5},
	)
	assert.True(t, res.Equal(want), "got\n%v", res)
}

func TestProductCard(t *testing.T) {
	fix := []struct {
		sets []Set
		card int
	}{
		{nil, 0},
		{[]Set{NewSet(5)}, 1},
		{[]Set{NewSet(1, 2, 3)}, 3},
		{[]Set{NewSet(1, 2), NewSet(1, 2, 3), NewSet(4, 5, 6, 7)}, 24},
		{[]Set{NewSet(1, 2), NewSet(), NewSet(4)}, 0},
		{[]Set{NewSet(1), NewSet(1), NewSet(1), NewSet(1)}, 1},
	}
	for i, dt := range fix {
		rows := Product(dt.sets...)
		if rows.Card() != dt.card {
			t.Errorf("%d. Product(%v).Card() => %d, want %d", i, dt.sets, rows.Card(), dt.card)
			continue
		}
		// every combination appears exactly once
		if d := rows.Distinct(); d.Card() != dt.card {
			t.Errorf("%d. Product(%v) has %d distinct tuples, want %d", i, dt.sets, d.Card(), dt.card)
		}
		for _, tup := range rows {
			for c, s := range dt.sets {
				assert.Contains(t, s, tup.At(c))
			}
		}
	}
}

func TestProductComplete(t *testing.T) {
	rows := Product(NewSet(-1, 0, 1), NewSet(10, 20), NewSet(3, 4, 5, 6))
	complete, err := IsComplete(rows)
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestProductNoSets(t *testing.T) {
	rows := Product()
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func BenchmarkProduct(b *testing.B) {
	sets := []Set{
		NewSet(1, 2, 3, 4, 5, 6),
		NewSet(1, 2, 3, 4, 5, 6),
		NewSet(1, 2, 3, 4, 5, 6),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Product(sets...)
	}
}
