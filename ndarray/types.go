// SPDX-License-Identifier: MIT

// Package ndarray: domain types shared by Array, its cursors and the free
// shape functions. Errors and options live in dedicated files.
package ndarray

// MaxRank is the largest dimension count admitted by Coord.
const MaxRank = 8

// Coord is the set of coordinate (and shape) types. The length of the array
// type is the dimension count D, so it is fixed at compile time while the
// extents stay run-time values.
//
// [0]int is part of the set; New and NewFromData reject it with ErrBadShape.
//
// Implementation code must not index a Coord with a constant (c[0] does not
// compile against [0]int); loop over len(c) instead.
type Coord interface {
	~[0]int | ~[1]int | ~[2]int | ~[3]int | ~[4]int |
		~[5]int | ~[6]int | ~[7]int | ~[8]int
}
