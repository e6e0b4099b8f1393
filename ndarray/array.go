// SPDX-License-Identifier: MIT

// Package ndarray - Array storage & safe accessors.
//
// Purpose:
//   - Provide a flat, dimension-0-fastest buffer addressed by D-component coordinates.
//   - Guarantee safety at the public surface: At/Set/Ptr return errors, Must* panic.
//   - Keep buffer length == product(shape) for the Array's whole lifetime.
//
// Complexity quicksheet:
//   - New: O(n) fill; NewFromData: O(1) adopt (O(n) with WithCopyData);
//     At/Set/Ptr: O(D); Clone/Fill/String: O(n).

package ndarray

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRunOpen  = "["
	_fmtRunClose = "]\n"
	_fmtSep      = ", "
)

// Array is a dense D-dimensional container of T.
//   - shape holds the D extents; D == len(C).
//   - data is the flat buffer, len(data) == product(shape) until consumed.
//   - consumed is set once owning iteration has taken the buffer.
type Array[T any, C Coord] struct {
	shape    C
	data     []T
	opts     Options
	consumed bool
}

var _ fmt.Stringer = (*Array[int, [2]int])(nil)

// New creates an Array of the given shape with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: Size(shape) rejects zero dimensions, negative extents, overflow.
//   - Stage 2: apply the WithMaxElements cap, if any.
//   - Stage 3: allocate and fill the buffer.
//
// Behavior highlights:
//   - Each slot receives a copy of fill by assignment; for reference types
//     (pointers, slices, maps) all slots share the referent.
//   - A zero extent is legal and yields an empty Array.
//
// Errors:
//   - ErrBadShape, ErrTooLarge (wrapped with the shape).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T any, C Coord](shape C, fill T, opts ...Option) (*Array[T, C], error) {
	o := gatherOptions(opts...)
	n, err := Size(shape)
	if err == nil {
		err = o.checkCap(n)
	}
	if err != nil {
		return nil, arrayErrorf(ctxNew, shape, err)
	}

	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}

	return &Array[T, C]{shape: shape, data: data, opts: o}, nil
}

// NewFromData wraps data as the backing buffer of an Array with the given shape.
// MAIN DESCRIPTION:
//   - Adopt a caller-built flat buffer laid out dimension-0-fastest.
//
// Implementation:
//   - Stage 1: validate the shape exactly as New does.
//   - Stage 2: require len(data) == Size(shape); never truncate or pad.
//   - Stage 3: adopt data, or copy it under WithCopyData.
//
// Errors:
//   - ErrBadShape, ErrTooLarge, ErrDimensionMismatch (wrapped with the shape).
//
// Notes:
//   - Without WithCopyData the caller must stop using data afterwards;
//     the Array owns it.
func NewFromData[T any, C Coord](shape C, data []T, opts ...Option) (*Array[T, C], error) {
	o := gatherOptions(opts...)
	n, err := Size(shape)
	if err == nil {
		err = o.checkCap(n)
	}
	if err != nil {
		return nil, arrayErrorf(ctxNewFromData, shape, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("Array.%s(%v): len(data)=%d, want %d: %w",
			ctxNewFromData, shape, len(data), n, ErrDimensionMismatch)
	}

	buf := data
	if o.copyData {
		buf = make([]T, n)
		copy(buf, data)
	}

	return &Array[T, C]{shape: shape, data: buf, opts: o}, nil
}

// MustNew is New for trusted callers: it panics with the wrapped error.
func MustNew[T any, C Coord](shape C, fill T, opts ...Option) *Array[T, C] {
	a, err := New(shape, fill, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// MustNewFromData is NewFromData for trusted callers: it panics with the wrapped error.
func MustNewFromData[T any, C Coord](shape C, data []T, opts ...Option) *Array[T, C] {
	a, err := NewFromData(shape, data, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// Shape returns the extents. C is an array type, so the result is a copy.
func (a *Array[T, C]) Shape() C { return a.shape }

// Dims returns the extents as a freshly allocated slice.
func (a *Array[T, C]) Dims() []int {
	out := make([]int, len(a.shape))
	for i := range out {
		out[i] = a.shape[i]
	}

	return out
}

// Rank returns the dimension count D.
func (a *Array[T, C]) Rank() int { return len(a.shape) }

// Len returns the buffer length: product(shape), or 0 once consumed.
func (a *Array[T, C]) Len() int { return len(a.data) }

// Consumed reports whether owning iteration has taken the buffer.
func (a *Array[T, C]) Consumed() bool { return a.consumed }

// Data returns the live backing buffer (not a copy), nil once consumed.
// Writes through it are visible to the Array; appending to it is not.
func (a *Array[T, C]) Data() []T { return a.data }

// indexOf bounds-checks c and returns its flat offset.
// Returns plain sentinels; public methods wrap them with context.
func (a *Array[T, C]) indexOf(c C) (int, error) {
	if a.consumed {
		return 0, ErrConsumed
	}
	if len(a.shape) == 0 {
		return 0, ErrBadShape // zero-value Array[T, [0]int]; constructors never build one
	}
	if !InRange(a.shape, c) {
		return 0, ErrOutOfRange
	}

	return offsetOf(a.shape, c), nil
}

// At returns the element at c.
// MAIN DESCRIPTION:
//   - Safe element read by coordinate.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds + consumed check).
//   - Stage 2: load from the flat buffer.
//
// Errors:
//   - ErrOutOfRange when any c[i] < 0 or c[i] >= shape[i].
//   - ErrConsumed after owning iteration.
//   - ErrBadShape on a zero-value Array[T, [0]int].
//
// Complexity:
//   - Time O(D), Space O(1).
func (a *Array[T, C]) At(c C) (T, error) {
	off, err := a.indexOf(c)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, c, err)
	}

	return a.data[off], nil
}

// Set stores v at c. Errors as for At.
func (a *Array[T, C]) Set(c C, v T) error {
	off, err := a.indexOf(c)
	if err != nil {
		return arrayErrorf(ctxSet, c, err)
	}
	a.data[off] = v

	return nil
}

// Ptr returns a pointer to the slot at c. The pointer stays valid for the
// Array's lifetime because the buffer is never reallocated. Errors as for At.
func (a *Array[T, C]) Ptr(c C) (*T, error) {
	off, err := a.indexOf(c)
	if err != nil {
		return nil, arrayErrorf(ctxPtr, c, err)
	}

	return &a.data[off], nil
}

// MustAt is At that panics on an invalid coordinate.
func (a *Array[T, C]) MustAt(c C) T {
	v, err := a.At(c)
	if err != nil {
		panic(err)
	}

	return v
}

// MustSet is Set that panics on an invalid coordinate.
func (a *Array[T, C]) MustSet(c C, v T) {
	if err := a.Set(c, v); err != nil {
		panic(err)
	}
}

// Fill overwrites every element with v. No-op once consumed.
func (a *Array[T, C]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns an independent Array with the same shape, options and a
// copied buffer. Elements are copied by assignment (shallow for reference types).
// Cloning a consumed Array yields a consumed Array.
func (a *Array[T, C]) Clone() *Array[T, C] {
	out := &Array[T, C]{shape: a.shape, opts: a.opts, consumed: a.consumed}
	if a.data != nil {
		out.data = make([]T, len(a.data))
		copy(out.data, a.data)
	}

	return out
}

// String renders one bracketed line per dimension-0 run, in layout order.
// Intended for debugging; empty and consumed arrays render as "".
func (a *Array[T, C]) String() string {
	if len(a.data) == 0 {
		return ""
	}
	run := a.Dims()[0] // non-empty buffer implies run > 0

	var b strings.Builder
	var base, j int
	for base = 0; base < len(a.data); base += run {
		b.WriteString(_fmtRunOpen)
		for j = 0; j < run; j++ {
			fmt.Fprintf(&b, "%v", a.data[base+j])
			if j+1 < run {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRunClose)
	}

	return b.String()
}
