package spc_test

import (
	"fmt"

	"github.com/ephys2/ephyscore/spc"
)

func ExampleRun() {
	// Two tight pairs, far apart: {0,1} and {2,3}.
	dists := [][]float64{
		{0, 1, 50, 51},
		{1, 0, 51, 50},
		{50, 51, 0, 1},
		{51, 50, 1, 0},
	}
	seed := int64(1)
	res, err := spc.Run(dists, spc.Options{
		Tmin: 0.1, Tmax: 0.1, Tstep: 0.1,
		Cycles: 20, K: 1, MSTree: false,
		Seed: &seed,
	})
	if err != nil {
		panic(err)
	}
	separated := res.Assignments[0][0] != res.Assignments[0][2]
	fmt.Println(len(res.Temps), separated)
	// Output:
	// 1 true
}
