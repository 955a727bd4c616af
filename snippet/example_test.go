package snippet_test

import (
	"fmt"

	"github.com/ephys2/ephyscore/snippet"
)

func ExampleGroups() {
	n := 8
	time := make([]int64, n)
	data := make([]float32, n)
	for i := range time {
		time[i] = int64(i)
	}
	data[3] = 10

	res, err := snippet.Groups(time, data, 1, snippet.Options{
		SLength:   4,
		HiThr:     3,
		LoThr:     1,
		ReturnN:   2,
		NChannels: 1,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Times[0])
	// Output:
	// [3]
}
