// SPDX-License-Identifier: MIT

// Package ndarray - iteration protocols.
//
// Purpose:
//   - Borrowing (Iter/All), mutable (IterMut/AllMut) and owning (IntoIter/Drain)
//     enumeration of (coordinate, element) pairs.
//
// Shared contract:
//   - Start at the all-zero coordinate, step with Advance, stop at the first
//     coordinate that fails InRange (the terminal sentinel, or the very first
//     coordinate when some extent is 0).
//   - Offsets visited are 0, 1, 2, … : iteration order is layout order.
//   - Single-pass: an exhausted cursor stays exhausted. Seq2 values returned by
//     All/AllMut/Drain are bound to one cursor, so ranging them again resumes
//     (or, once exhausted, yields nothing) rather than restarting.
//
// Access discipline (not enforced, no locks):
//   - Any number of Iter cursors may coexist with each other and with At.
//   - IterMut and IntoIter require exclusive access to the Array.

package ndarray

import "iter"

// cursor is the coordinate/offset pair every iteration mode advances.
type cursor[C Coord] struct {
	at  C   // next coordinate to yield
	off int // offsetOf(shape, at) while at is InRange
}

// next reports whether at is still valid for shape and a buffer of length n,
// and if so returns the current position and advances past it.
func (cur *cursor[C]) next(shape C, n int) (C, int, bool) {
	if cur.off >= n || !InRange(shape, cur.at) {
		var zero C
		return zero, 0, false
	}
	at, off := cur.at, cur.off
	Advance(shape, &cur.at)
	cur.off++ // dimension-0-fastest: each advance is exactly +1 in layout

	return at, off, true
}

// Iter is a borrowing cursor yielding element copies.
type Iter[T any, C Coord] struct {
	arr *Array[T, C]
	cur cursor[C]
}

// Iter returns a borrowing cursor positioned at the all-zero coordinate.
func (a *Array[T, C]) Iter() *Iter[T, C] { return &Iter[T, C]{arr: a} }

// Next returns the next (coordinate, element) pair; ok is false once the
// cursor is exhausted or the Array has been consumed.
func (it *Iter[T, C]) Next() (c C, v T, ok bool) {
	c, off, ok := it.cur.next(it.arr.shape, len(it.arr.data))
	if !ok {
		return c, v, false
	}

	return c, it.arr.data[off], true
}

// IterMut is a mutable cursor yielding pointers into the Array's buffer.
type IterMut[T any, C Coord] struct {
	arr *Array[T, C]
	cur cursor[C]
}

// IterMut returns a mutable cursor positioned at the all-zero coordinate.
func (a *Array[T, C]) IterMut() *IterMut[T, C] { return &IterMut[T, C]{arr: a} }

// Next returns the next coordinate and a pointer to its slot.
// MAIN DESCRIPTION:
//   - Mutable access in layout order.
//
// Behavior highlights:
//   - The pointer addresses the Array's buffer, never the cursor, so later
//     calls to Next do not invalidate it.
//   - Holding pointers to several slots at once is memory-safe in Go; keeping
//     them across other writers is still a data race the caller must avoid.
func (it *IterMut[T, C]) Next() (C, *T, bool) {
	c, off, ok := it.cur.next(it.arr.shape, len(it.arr.data))
	if !ok {
		return c, nil, false
	}

	return c, &it.arr.data[off], true
}

// IntoIter is an owning cursor. It holds the buffer taken from the Array and
// hands out every element exactly once.
type IntoIter[T any, C Coord] struct {
	shape C
	data  []T
	cur   cursor[C]
}

// IntoIter consumes the Array and returns an owning cursor over its elements.
// MAIN DESCRIPTION:
//   - Transfer the buffer from the Array to the cursor.
//
// Implementation:
//   - Stage 1: detach the buffer; mark the Array consumed.
//   - Stage 2: each Next moves one element out, leaving T's zero value behind.
//
// Behavior highlights:
//   - Consumption happens here, not on the first Next: the Array is unusable
//     even if the cursor is dropped unread.
//   - Calling IntoIter on an already consumed Array returns an empty cursor.
//
// Complexity:
//   - Time O(1) here, O(D) amortized O(1) per Next.
func (a *Array[T, C]) IntoIter() *IntoIter[T, C] {
	it := &IntoIter[T, C]{shape: a.shape, data: a.data}
	a.data = nil
	a.consumed = true

	return it
}

// Next moves the next element out of the buffer.
func (it *IntoIter[T, C]) Next() (c C, v T, ok bool) {
	c, off, ok := it.cur.next(it.shape, len(it.data))
	if !ok {
		return c, v, false
	}
	v, it.data[off] = it.data[off], v // v is T's zero value on the right-hand side

	return c, v, true
}

// All returns a borrowing sequence over (coordinate, element) pairs.
//
//	for c, v := range a.All() { ... }
func (a *Array[T, C]) All() iter.Seq2[C, T] {
	it := a.Iter()
	return func(yield func(C, T) bool) {
		for c, v, ok := it.Next(); ok; c, v, ok = it.Next() {
			if !yield(c, v) {
				return
			}
		}
	}
}

// AllMut returns a mutable sequence over (coordinate, *element) pairs.
func (a *Array[T, C]) AllMut() iter.Seq2[C, *T] {
	it := a.IterMut()
	return func(yield func(C, *T) bool) {
		for c, p, ok := it.Next(); ok; c, p, ok = it.Next() {
			if !yield(c, p) {
				return
			}
		}
	}
}

// Drain consumes the Array immediately and returns an owning sequence.
// Breaking out of the loop leaves the remaining elements in the detached
// buffer; the Array itself stays consumed.
func (a *Array[T, C]) Drain() iter.Seq2[C, T] {
	it := a.IntoIter()
	return func(yield func(C, T) bool) {
		for c, v, ok := it.Next(); ok; c, v, ok = it.Next() {
			if !yield(c, v) {
				return
			}
		}
	}
}
