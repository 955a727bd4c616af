package sosfilt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiltFiltIdentitySection(t *testing.T) {
	// b0=1, all other coefficients 0: an identity section. Its state
	// stays at zero for any input, so the cascade must leave x unchanged
	// regardless of padding.
	sos := [][6]float32{{1, 0, 0, 1, 0, 0}}
	zi := [][2]float32{{0, 0}}
	x := [][]float32{{1}, {2}, {3}, {4}, {5}, {6}}
	want := [][]float32{{1}, {2}, {3}, {4}, {5}, {6}}

	err := FiltFilt(sos, zi, x, PadEven, 2)
	require.NoError(t, err)
	require.Equal(t, want, x)
}

func TestFiltFiltPadTooLarge(t *testing.T) {
	sos := [][6]float32{{1, 0, 0, 1, 0, 0}}
	zi := [][2]float32{{0, 0}}
	x := [][]float32{{1}, {2}}
	err := FiltFilt(sos, zi, x, PadEven, 2)
	require.ErrorIs(t, err, ErrPadTooLarge)
}

func TestFiltFiltShapeMismatch(t *testing.T) {
	sos := [][6]float32{{1, 0, 0, 1, 0, 0}, {1, 0, 0, 1, 0, 0}}
	zi := [][2]float32{{0, 0}}
	x := [][]float32{{1}, {2}, {3}}
	err := FiltFilt(sos, zi, x, PadEven, 1)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFiltFiltInvalidPadType(t *testing.T) {
	sos := [][6]float32{{1, 0, 0, 1, 0, 0}}
	zi := [][2]float32{{0, 0}}
	x := [][]float32{{1}, {2}, {3}}
	err := FiltFilt(sos, zi, x, PadType(99), 1)
	require.ErrorIs(t, err, ErrInvalidPadType)
}

func TestFiltFiltMultiChannel(t *testing.T) {
	sos := [][6]float32{{1, 0, 0, 1, 0, 0}}
	zi := [][2]float32{{0, 0}}
	x := [][]float32{{1, 10}, {2, 20}, {3, 30}, {4, 40}}
	want := [][]float32{{1, 10}, {2, 20}, {3, 30}, {4, 40}}

	err := FiltFilt(sos, zi, x, PadOdd, 1)
	require.NoError(t, err)
	require.Equal(t, want, x)
}
