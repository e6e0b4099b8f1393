// SPDX-License-Identifier: MIT

// Package ndarray - shape arithmetic shared by Array and its cursors.
//
// Purpose:
//   - Single source of truth for the offset formula, the in-range check and
//     the coordinate advance used by every iteration mode.
//   - Pure functions over (shape, coordinate) values; no allocations.
//
// Layout:
//   - Dimension 0 varies fastest: offset = Σ c[i] * Π_{j<i} shape[j].
//
// Complexity quicksheet:
//   - Size/Offset/InRange/Advance/CoordOf: O(D).

package ndarray

import (
	"iter"
	"math"
)

// Size returns the number of elements described by shape.
// MAIN DESCRIPTION:
//   - Product of all extents, with validation.
//
// Implementation:
//   - Stage 1: reject zero dimensions and negative extents (ErrBadShape).
//   - Stage 2: short-circuit to 0 when any extent is 0.
//   - Stage 3: multiply with an overflow guard (ErrTooLarge).
//
// Errors:
//   - ErrBadShape, ErrTooLarge (plain sentinels; callers wrap).
//
// Complexity:
//   - Time O(D), Space O(1).
func Size[C Coord](shape C) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	var i int
	for i = 0; i < len(shape); i++ {
		if shape[i] < 0 {
			return 0, ErrBadShape
		}
	}
	for i = 0; i < len(shape); i++ {
		if shape[i] == 0 {
			return 0, nil // degenerate but legal: empty buffer
		}
	}

	n := 1
	for i = 0; i < len(shape); i++ {
		if n > math.MaxInt/shape[i] {
			return 0, ErrTooLarge
		}
		n *= shape[i]
	}

	return n, nil
}

// InRange reports whether every component satisfies 0 <= c[i] < shape[i].
// It is the termination check of every iteration mode.
func InRange[C Coord](shape, c C) bool {
	for i := 0; i < len(shape); i++ {
		if c[i] < 0 || c[i] >= shape[i] {
			return false
		}
	}

	return true
}

// Offset maps c to its flat position in a buffer laid out for shape.
// The shape is validated as by Size first (ErrBadShape, ErrTooLarge), so the
// stride product can never overflow; ErrOutOfRange when c is not InRange.
func Offset[C Coord](shape, c C) (int, error) {
	if _, err := Size(shape); err != nil {
		return 0, err
	}
	if !InRange(shape, c) {
		return 0, ErrOutOfRange
	}

	return offsetOf(shape, c), nil
}

// offsetOf is the unchecked offset formula; c must be InRange.
func offsetOf[C Coord](shape, c C) int {
	off, stride := 0, 1
	for i := 0; i < len(shape); i++ {
		off += c[i] * stride // c[i] * Π_{j<i} shape[j]
		stride *= shape[i]
	}

	return off
}

// CoordOf is the inverse of Offset: it returns the coordinate stored at off.
// Returns ErrOutOfRange when off is outside [0, Size(shape)).
func CoordOf[C Coord](shape C, off int) (C, error) {
	var c C
	n, err := Size(shape)
	if err != nil {
		return c, err
	}
	if off < 0 || off >= n {
		return c, ErrOutOfRange
	}
	for i := 0; i < len(shape); i++ {
		c[i] = off % shape[i]
		off /= shape[i]
	}

	return c, nil
}

// Advance moves c to the next coordinate in dimension-0-fastest order.
// MAIN DESCRIPTION:
//   - Odometer increment with carry from dimension i into i+1.
//
// Implementation:
//   - For i = 0..D-1: increment c[i]; stop if it is still below shape[i].
//   - On overflow of a non-last dimension: reset c[i] to 0 and carry.
//   - On overflow of the last dimension: leave c[D-1] == shape[D-1] and stop.
//
// Behavior highlights:
//   - After the last valid coordinate c becomes the terminal sentinel
//     [0, …, 0, shape[D-1]], which fails InRange only through the last
//     dimension. Iteration relies on exactly this state.
//   - Shape [5 5 5] from [4 3 4]: [0 4 4], [1 4 4], [2 4 4], [3 4 4],
//     [4 4 4], [0 0 5].
//
// Complexity:
//   - Time O(D) worst case, amortized O(1); Space O(1).
func Advance[C Coord](shape C, c *C) {
	last := len(shape) - 1
	for i := 0; i <= last; i++ {
		(*c)[i]++
		if (*c)[i] < shape[i] {
			return
		}
		if i == last {
			return // terminal sentinel: the last dimension is never wrapped
		}
		(*c)[i] = 0
	}
}

// Coords enumerates the coordinate space of shape in layout order.
// A zero-dimension shape or one with a non-positive extent yields nothing.
func Coords[C Coord](shape C) iter.Seq[C] {
	return func(yield func(C) bool) {
		if len(shape) == 0 {
			return
		}
		var c C
		for InRange(shape, c) {
			if !yield(c) {
				return
			}
			Advance(shape, &c)
		}
	}
}
