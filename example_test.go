// a set of examples for the cartesian package

package cartesian_test

import (
	"errors"
	"fmt"

	"github.com/jonlawlor/cartesian"
)

func ExampleProduct() {
	rows := cartesian.Product(
		cartesian.NewSet(1, 2),
		cartesian.NewSet(1, 2),
	)
	fmt.Println(cartesian.PrettyPrint(rows))
	// Output:
	//  +-----+-----+
	//  |  c0 |  c1 |
	//  +-----+-----+
	//  |   1 |   1 |
	//  |   1 |   2 |
	//  |   2 |   1 |
	//  |   2 |   2 |
	//  +-----+-----+
}

func ExampleIsComplete() {
	rows := cartesian.Product(cartesian.NewSet(1, 2), cartesian.NewSet(2, 3))
	for _, r := range []cartesian.Rows{rows, rows.Without(3)} {
		complete, err := cartesian.IsComplete(r)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(r.Card(), complete)
	}
	// Output:
	// 4 true
	// 3 false
}

func ExampleMasks() {
	for mask := range cartesian.Masks(3) {
		fmt.Printf("%03b %d\n", mask, cartesian.PopCount(mask))
	}
	// Output:
	// 111 3
	// 011 2
	// 101 2
	// 110 2
	// 001 1
	// 010 1
	// 100 1
}

func ExampleFindMinimal() {
	rows := cartesian.NewRows(
		[]int64{1, 1},
		[]int64{1, 2},
		[]int64{3, 3},
		[]int64{2, 1},
		[]int64{2, 2},
	)
	sol, err := cartesian.FindMinimal(rows)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("size %d mask %05b\n", sol.Size, sol.Mask)
	fmt.Println(sol.Subset())

	// two different subsets of size 2 are complete here
	_, err = cartesian.FindMinimal(cartesian.NewRows(
		[]int64{1, 1},
		[]int64{1, 2},
		[]int64{2, 1},
	))
	var dup *cartesian.DuplicateSolutionError
	fmt.Println(errors.As(err, &dup), err)
	// Output:
	// size 4 mask 11011
	// 1 1
	// 1 2
	// 2 1
	// 2 2
	// true cartesian: duplicate complete subsets of size 2: 0b11 and 0b101
}
