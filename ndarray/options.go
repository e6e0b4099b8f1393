// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes constructor behavior and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package ndarray

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCopyData makes NewFromData adopt the caller's slice as the
	// backing buffer (no copy). Later writes through that slice are visible
	// in the Array.
	DefaultCopyData = false

	// DefaultMaxElements disables the element-count cap. Shapes are still
	// rejected when their product overflows int.
	DefaultMaxElements = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxElementsInvalid = "ndarray: WithMaxElements: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option`.
type Options struct {
	copyData    bool // DefaultCopyData
	maxElements int  // DefaultMaxElements; 0 == no cap
}

// WithCopyData makes NewFromData copy the supplied slice instead of adopting it.
// New ignores it (it always allocates).
func WithCopyData() Option {
	return func(o *Options) { o.copyData = true }
}

// WithMaxElements caps the element count an Array may allocate or adopt.
// Implementation:
//   - Stage 1: validate n >= 1.
//   - Stage 2: return a setter writing the cap.
//
// Behavior highlights:
//   - Constructors fail with ErrTooLarge when Size(shape) > n.
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxElements(n int) Option {
	if n < 1 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// gatherOptions applies user options over defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		copyData:    DefaultCopyData,
		maxElements: DefaultMaxElements,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// checkCap rejects element counts above the configured cap.
func (o Options) checkCap(n int) error {
	if o.maxElements > 0 && n > o.maxElements {
		return ErrTooLarge
	}

	return nil
}
