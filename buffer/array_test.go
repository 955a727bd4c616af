package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayCheckShape(t *testing.T) {
	a := New([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, a.CheckShape(2, 3))
	require.ErrorIs(t, a.CheckShape(3, 2), ErrShapeMismatch)
	require.ErrorIs(t, a.CheckShape(2, 2), ErrShapeMismatch)
}

func TestArrayCheckLen(t *testing.T) {
	a := New([]float32{1, 2, 3}, 3)
	require.NoError(t, a.CheckLen(3))
	require.ErrorIs(t, a.CheckLen(4), ErrLengthMismatch)
}

func TestCheckPositiveShape(t *testing.T) {
	require.NoError(t, CheckPositiveShape(1, 2, 3))
	require.ErrorIs(t, CheckPositiveShape(1, 0, 3), ErrEmptyShape)
	require.ErrorIs(t, CheckPositiveShape(-1), ErrEmptyShape)
}

func TestSameLength(t *testing.T) {
	require.NoError(t, SameLength("a", 3, "b", 3))
	require.ErrorIs(t, SameLength("a", 3, "b", 4), ErrLengthMismatch)
}
