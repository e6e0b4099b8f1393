// Package ndarray provides Array, a dense D-dimensional container stored in
// one flat slice.
//
// The dimension count D is fixed by the coordinate type: an Array[T, [3]int]
// is three-dimensional and is indexed with [3]int values. Extents are chosen
// at run time and never change afterwards.
//
// The package provides:
//
//   - Construction from a fill value (New) or from a ready buffer (NewFromData).
//   - Safe indexing (At/Set/Ptr return ErrOutOfRange) and fail-fast indexing
//     (MustAt/MustSet panic).
//   - Three iteration modes in physical layout order: borrowing (Iter, All),
//     mutable (IterMut, AllMut) and owning (IntoIter, Drain).
//   - Named views Array1D, Array2D and Array3D with Width/Height/Depth.
//
// Layout is dimension-0-fastest: offset = Σ c[i]·Π_{j<i} shape[j].
//
// Arrays carry no locks. Concurrent readers are fine; any writer needs
// exclusive access for the duration of the operation.
package ndarray
