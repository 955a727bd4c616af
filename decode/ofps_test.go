package decode

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildOFPSFiles(t *testing.T, times []int32, amp [][]int16) (string, string) {
	t.Helper()
	dir := t.TempDir()

	var timeBuf bytes.Buffer
	for _, v := range times {
		require.NoError(t, binary.Write(&timeBuf, binary.LittleEndian, v))
	}
	timePath := filepath.Join(dir, "time.dat")
	require.NoError(t, os.WriteFile(timePath, timeBuf.Bytes(), 0o600))

	var ampBuf bytes.Buffer
	for _, row := range amp {
		for _, v := range row {
			require.NoError(t, binary.Write(&ampBuf, binary.LittleEndian, v))
		}
	}
	ampPath := filepath.Join(dir, "amplifier.dat")
	require.NoError(t, os.WriteFile(ampPath, ampBuf.Bytes(), 0o600))

	return timePath, ampPath
}

func TestReadOFPSBatchRoundTrip(t *testing.T) {
	times := []int32{10, 20, 30, 40}
	amp := [][]int16{{-100, 0}, {5, -5}, {100, 200}, {-32768, 32767}}
	timePath, ampPath := buildOFPSFiles(t, times, amp)

	res, err := ReadOFPSBatch(timePath, ampPath, 0, 4, 2)
	require.NoError(t, err)

	require.Equal(t, []int64{10, 20, 30, 40}, res.Time)
	require.InDelta(t, 0.195*-100, res.Amp[0], 1e-6)
	require.InDelta(t, 0.195*0, res.Amp[1], 1e-6)
	require.InDelta(t, 0.195*200, res.Amp[5], 1e-6)
	// Amp is float32: compare against the float32 product, whose rounding
	// at this magnitude is far larger than the 1e-6 tolerance.
	require.InDelta(t, float32(0.195)*32767, res.Amp[7], 1e-6)
}

func TestReadOFPSBatchRangeSemantics(t *testing.T) {
	times := []int32{10, 20, 30, 40}
	amp := [][]int16{{-100, 0}, {5, -5}, {100, 200}, {-32768, 32767}}
	timePath, ampPath := buildOFPSFiles(t, times, amp)

	full, err := ReadOFPSBatch(timePath, ampPath, 0, 4, 2)
	require.NoError(t, err)
	sub, err := ReadOFPSBatch(timePath, ampPath, 1, 3, 2)
	require.NoError(t, err)

	require.Equal(t, full.Time[1:3], sub.Time)
	require.Equal(t, full.Amp[1*2:3*2], sub.Amp)
}

func TestReadOFPSBatchInvalidRange(t *testing.T) {
	_, err := ReadOFPSBatch("t", "a", 5, 3, 2)
	require.ErrorIs(t, err, ErrInvalidRange)
}
