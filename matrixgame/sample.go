package matrixgame

import (
	"math"

	"github.com/timpalpant/go-cfr/sampling"
)

// SampleAction selects an action from strategy given a uniform draw x in
// [0, 1), e.g. to pick the row player's move from SolveZeroSumGame's result.
// Actions with zero probability are never selected. Returns -1 if no action
// has positive probability.
func SampleAction(strategy []float64, x float64) int {
	support := make([]int, 0, len(strategy))
	p := make([]float32, 0, len(strategy))
	for i, v := range strategy {
		if v > 0 {
			support = append(support, i)
			p = append(p, float32(v))
		}
	}

	if len(support) == 0 {
		return -1
	}

	// Draws just below 1 round up to 1 as float32.
	x32 := float32(x)
	if x32 >= 1 {
		x32 = math.Nextafter32(1, 0)
	} else if x32 < 0 {
		x32 = 0
	}

	return support[sampling.SampleOne(p, x32)]
}
