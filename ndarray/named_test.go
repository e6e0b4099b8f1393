// Package ndarray_test contains unit tests for the named 1-D/2-D/3-D views.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/dynarray/ndarray"
	"github.com/stretchr/testify/require"
)

// TestNamedAccessors verifies Width/Height/Depth mirror the shape.
func TestNamedAccessors(t *testing.T) {
	t.Parallel()

	line, err := ndarray.NewArray1D(7, 0)
	require.NoError(t, err)
	require.Equal(t, 7, line.Width())
	require.Equal(t, [1]int{7}, line.Shape())

	grid, err := ndarray.NewArray2D(4, 3, false)
	require.NoError(t, err)
	require.Equal(t, 4, grid.Width())
	require.Equal(t, 3, grid.Height())
	require.Equal(t, 12, grid.Len())

	vol, err := ndarray.NewArray3D(2, 3, 4, "")
	require.NoError(t, err)
	require.Equal(t, 2, vol.Width())
	require.Equal(t, 3, vol.Height())
	require.Equal(t, 4, vol.Depth())
	require.Equal(t, vol.Shape(), [3]int{vol.Width(), vol.Height(), vol.Depth()})
}

// TestNamedViewsShareStorage checks As2D wraps without copying and promotes Array methods.
func TestNamedViewsShareStorage(t *testing.T) {
	t.Parallel()

	a := mustNew(t, [2]int{2, 2}, 0)
	g := ndarray.As2D(a)
	g.MustSet([2]int{1, 1}, 5)
	require.Equal(t, 5, a.MustAt([2]int{1, 1}))
	require.Equal(t, 2, g.Width())

	l := ndarray.As1D(mustNew(t, [1]int{3}, 'x'))
	require.Equal(t, 3, l.Width())
	v := ndarray.As3D(mustNew(t, [3]int{1, 2, 3}, 0))
	require.Equal(t, 3, v.Depth())
}

// TestNamedConstructorsReject forwards shape errors from New.
func TestNamedConstructorsReject(t *testing.T) {
	t.Parallel()

	_, err := ndarray.NewArray1D(-1, 0)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = ndarray.NewArray2D(2, 2, 0, ndarray.WithMaxElements(3))
	require.ErrorIs(t, err, ndarray.ErrTooLarge)
	_, err = ndarray.NewArray3D(1, -1, 1, 0)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}
