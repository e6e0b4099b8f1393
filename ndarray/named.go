// SPDX-License-Identifier: MIT

// Package ndarray - named views for the common low-dimensional cases.
// Array1D/2D/3D embed the generic *Array, so every Array method is promoted;
// they only add Width/Height/Depth, which read the same shape storage.

package ndarray

// Array1D is a one-dimensional Array with a Width accessor.
type Array1D[T any] struct{ *Array[T, [1]int] }

// Array2D is a two-dimensional Array with Width and Height accessors.
type Array2D[T any] struct{ *Array[T, [2]int] }

// Array3D is a three-dimensional Array with Width, Height and Depth accessors.
type Array3D[T any] struct{ *Array[T, [3]int] }

// NewArray1D creates a width-long Array1D filled with fill.
func NewArray1D[T any](width int, fill T, opts ...Option) (Array1D[T], error) {
	a, err := New([1]int{width}, fill, opts...)
	return Array1D[T]{a}, err
}

// NewArray2D creates a width×height Array2D filled with fill.
func NewArray2D[T any](width, height int, fill T, opts ...Option) (Array2D[T], error) {
	a, err := New([2]int{width, height}, fill, opts...)
	return Array2D[T]{a}, err
}

// NewArray3D creates a width×height×depth Array3D filled with fill.
func NewArray3D[T any](width, height, depth int, fill T, opts ...Option) (Array3D[T], error) {
	a, err := New([3]int{width, height, depth}, fill, opts...)
	return Array3D[T]{a}, err
}

// As1D wraps an existing one-dimensional Array; no copy is made.
func As1D[T any](a *Array[T, [1]int]) Array1D[T] { return Array1D[T]{a} }

// As2D wraps an existing two-dimensional Array; no copy is made.
func As2D[T any](a *Array[T, [2]int]) Array2D[T] { return Array2D[T]{a} }

// As3D wraps an existing three-dimensional Array; no copy is made.
func As3D[T any](a *Array[T, [3]int]) Array3D[T] { return Array3D[T]{a} }

// Width is the extent of dimension 0.
func (a Array1D[T]) Width() int { return a.shape[0] }

// Width is the extent of dimension 0 (the fastest-varying one).
func (a Array2D[T]) Width() int { return a.shape[0] }

// Height is the extent of dimension 1.
func (a Array2D[T]) Height() int { return a.shape[1] }

// Width is the extent of dimension 0 (the fastest-varying one).
func (a Array3D[T]) Width() int { return a.shape[0] }

// Height is the extent of dimension 1.
func (a Array3D[T]) Height() int { return a.shape[1] }

// Depth is the extent of dimension 2 (the slowest-varying one).
func (a Array3D[T]) Depth() int { return a.shape[2] }
