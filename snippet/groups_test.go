package snippet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupsBasicDetection(t *testing.T) {
	// Single channel group, 1 channel. A clean spike at sample 5 that
	// returns below lo_thr for 2 samples afterward.
	n := 14
	time := make([]int64, n)
	data := make([]float32, n)
	for i := range time {
		time[i] = int64(i)
	}
	data[5] = 10

	opts := Options{SLength: 4, HiThr: 3, LoThr: 1, ReturnN: 2, NChannels: 1}
	res, err := Groups(time, data, 1, opts)
	require.NoError(t, err)
	require.Len(t, res.Times, 1)
	require.Equal(t, []int64{5}, res.Times[0])
	require.Len(t, res.Waveforms[0], opts.SLength)
	require.Equal(t, 1, res.MaxLen)
}

func TestGroupsDropsEdgePeak(t *testing.T) {
	n := 6
	time := make([]int64, n)
	data := make([]float32, n)
	for i := range time {
		time[i] = int64(i)
	}
	data[0] = 10 // Peak too close to the left edge for SLength=4.

	opts := Options{SLength: 4, HiThr: 3, LoThr: 1, ReturnN: 1, NChannels: 1}
	res, err := Groups(time, data, 1, opts)
	require.NoError(t, err)
	require.Empty(t, res.Times[0], "peak too close to the edge must be dropped")
}

func TestGroupsMultipleChannelsAndGroups(t *testing.T) {
	// Two groups of 2 channels each, m=4.
	n := 10
	m := 4
	time := make([]int64, n)
	data := make([]float32, n*m)
	for i := range time {
		time[i] = int64(i)
	}
	// Spike on channel 0 (group 0) at sample 4.
	data[4*m+0] = 10
	// Spike on channel 3 (group 1) at sample 6.
	data[6*m+3] = 10

	opts := Options{SLength: 2, HiThr: 3, LoThr: 1, ReturnN: 1, NChannels: 2}
	res, err := Groups(time, data, m, opts)
	require.NoError(t, err)
	require.Len(t, res.Times, 2)
	require.Equal(t, []int64{4}, res.Times[0])
	require.Equal(t, []int64{6}, res.Times[1])
}

func TestGroupsPreconditions(t *testing.T) {
	_, err := Groups(nil, nil, 1, Options{HiThr: 0, LoThr: 1, NChannels: 1})
	require.ErrorIs(t, err, ErrNonPositiveHiThr)

	_, err = Groups(nil, nil, 1, Options{HiThr: 1, LoThr: 0, NChannels: 1})
	require.ErrorIs(t, err, ErrNonPositiveLoThr)

	_, err = Groups(nil, nil, 3, Options{HiThr: 1, LoThr: 1, NChannels: 2})
	require.ErrorIs(t, err, ErrIncompleteGroups)

	_, err = Groups([]int64{0, 1}, make([]float32, 3), 1, Options{HiThr: 1, LoThr: 1, NChannels: 1})
	require.ErrorIs(t, err, ErrShapeMismatch)
}
