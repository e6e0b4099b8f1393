// Package dynarray is a small home for dense, fixed-shape, D-dimensional
// arrays backed by a single contiguous buffer.
//
// 🚀 What is inside?
//
//   - ndarray/: Array[T, C], a generic container with coordinate indexing,
//     bounds checks and borrowing / mutable / owning iteration
//   - examples/: a runnable flood fill over a 2-D grid
//
// ✨ Why use it?
//
//   - One implementation for 1-D, 2-D, 3-D … 8-D data
//   - The dimension count is part of the type: [3]int coordinates never
//     reach a 2-D array
//   - Pure Go, no cgo, no hidden deps
//
// Layout in memory is dimension-0-fastest: for a W×H×D volume the cell
// (x, y, z) lives at offset x + y·W + z·W·H.
//
// Quick ASCII example (shape [3 2]):
//
//	offset: 0 1 2 3 4 5
//	coord : (0,0) (1,0) (2,0) (0,1) (1,1) (2,1)
//
//	go get github.com/katalvlaran/dynarray/ndarray
package dynarray
