// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Public constructors and indexers return these sentinels wrapped with
// call-site context; tests MUST match them via errors.Is. Must* helpers and
// option constructors panic instead (programmer error).

package ndarray

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for easy grepping. Public
// methods wrap with arrayErrorf so the method and coordinate are visible;
// the sentinel stays reachable through %w.

var (
	// ErrBadShape is returned when a shape has zero dimensions or a negative extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrTooLarge is returned when the element count overflows int or exceeds
	// the cap configured with WithMaxElements.
	ErrTooLarge = errors.New("ndarray: shape too large")

	// ErrDimensionMismatch indicates that a supplied buffer length differs
	// from the product of the shape.
	ErrDimensionMismatch = errors.New("ndarray: data length does not match shape")

	// ErrOutOfRange indicates that some coordinate component is negative or
	// not strictly below its extent, or that a flat offset is outside the buffer.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrConsumed signals use of an Array after owning iteration took its buffer.
	ErrConsumed = errors.New("ndarray: array consumed by owning iteration")
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxNewFromData = "NewFromData"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxPtr         = "Ptr"
)

// arrayErrorf attaches method context and the offending coordinate (or shape)
// to a sentinel error. The argument is printed with %v, so arrays render as [x y z].
func arrayErrorf(method string, at any, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, at, err)
}
