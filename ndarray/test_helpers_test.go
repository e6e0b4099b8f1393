// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by the array, iteration and bench tests.

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/dynarray/ndarray"
)

// mustNew allocates an Array or aborts the test.
func mustNew[T any, C ndarray.Coord](tb testing.TB, shape C, fill T) *ndarray.Array[T, C] {
	tb.Helper()
	a, err := ndarray.New(shape, fill)
	if err != nil {
		tb.Fatalf("New(%v): %v", shape, err)
	}

	return a
}

// iota3 builds a shape-sized Array whose element at offset k is k.
// Used to check that iteration and indexing agree with the layout formula.
func iota3(tb testing.TB, shape [3]int) *ndarray.Array[int, [3]int] {
	tb.Helper()
	n := shape[0] * shape[1] * shape[2]
	data := make([]int, n)
	for k := range data {
		data[k] = k
	}
	a, err := ndarray.NewFromData(shape, data)
	if err != nil {
		tb.Fatalf("NewFromData(%v): %v", shape, err)
	}

	return a
}

// offset3 is the layout formula written out by hand for three dimensions.
func offset3(shape, c [3]int) int {
	return c[0] + c[1]*shape[0] + c[2]*shape[0]*shape[1]
}

// shapes3 covers the boundary-heavy 3-D shapes used across iteration tests.
var shapes3 = [][3]int{
	{1, 1, 1},
	{5, 5, 5},
	{2, 3, 4},
	{4, 3, 2},
	{1, 7, 1},
	{7, 1, 1},
	{1, 1, 7},
	{0, 3, 3},
	{3, 0, 3},
	{3, 3, 0},
}
