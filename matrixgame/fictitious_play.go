package matrixgame

import (
	"math"

	"github.com/golang/glog"
)

// Params controls when FictitiousPlay stops iterating.
type Params struct {
	// Hard cap on the number of iterations.
	MaxIterations int
	// The learning rate stopping rule only applies after this many iterations.
	MinIterations int
	// Stop once the learning rate 2/(t+2) drops below this value.
	LearningRateThreshold float64
	// If positive, additionally stop once no entry of either average strategy
	// moved by more than Tolerance during an iteration. Zero disables it.
	Tolerance float64
}

// DefaultParams are the parameters used by SolveZeroSumGame.
var DefaultParams = Params{
	MaxIterations:         1000,
	MinIterations:         10,
	LearningRateThreshold: 1e-6,
}

// Result is the outcome of a FictitiousPlay run.
type Result struct {
	RowStrategy []float64
	ColStrategy []float64
	// Number of completed iterations.
	Iterations int
	// True only if the Tolerance criterion ended the run.
	Converged bool
}

// SolveZeroSumGame returns an approximate equilibrium strategy for the row
// player of the zero-sum game with the given payoff matrix. Entry (i, j) is
// the row player's payoff when row plays i and column plays j.
//
// The matrix must be rectangular with finite entries; see Validate.
func SolveZeroSumGame(payoffs [][]float64) []float64 {
	return FictitiousPlay(payoffs, DefaultParams).RowStrategy
}

// FictitiousPlay approximates an equilibrium of the zero-sum game by having
// each player repeatedly best-respond to the other's average strategy, and
// blending that best response into its own average with step size 2/(t+2).
func FictitiousPlay(payoffs [][]float64, params Params) Result {
	nRows := len(payoffs)
	if nRows == 0 {
		return Result{RowStrategy: []float64{}, ColStrategy: []float64{}}
	}

	nCols := len(payoffs[0])
	if nCols == 0 {
		return Result{RowStrategy: []float64{}, ColStrategy: []float64{}}
	}

	rowAvg := uniformDistribution(nRows)
	colAvg := uniformDistribution(nCols)
	rowUtilities := make([]float64, nRows)
	colUtilities := make([]float64, nCols)

	logEvery := params.MaxIterations / 10
	result := Result{}
	for t := 0; t < params.MaxIterations; t++ {
		// The column player maximizes its own payoff, which is the column
		// that is worst for the row player.
		getColUtilities(payoffs, rowAvg, colUtilities)
		bestCol := argMax(colUtilities)
		getRowUtilities(payoffs, colAvg, rowUtilities)
		bestRow := argMax(rowUtilities)

		learningRate := 2.0 / (float64(t) + 2.0)
		delta := blend(rowAvg, bestRow, learningRate)
		if d := blend(colAvg, bestCol, learningRate); d > delta {
			delta = d
		}
		result.Iterations = t + 1

		if logEvery > 0 && (t+1)%logEvery == 0 {
			glog.V(2).Infof("After %d iterations, row weights: %v", t+1, rowAvg)
			glog.V(2).Infof("After %d iterations, column weights: %v", t+1, colAvg)
		}

		if t > params.MinIterations && learningRate < params.LearningRateThreshold {
			break
		}

		if params.Tolerance > 0 && t > params.MinIterations && delta < params.Tolerance {
			result.Converged = true
			break
		}
	}

	result.RowStrategy = normalize(rowAvg)
	result.ColStrategy = normalize(colAvg)
	return result
}

// Utilities of each column against the row average, from the column
// player's point of view.
func getColUtilities(payoffs [][]float64, rowAvg, result []float64) {
	for j := range result {
		result[j] = 0
	}

	for i, p := range rowAvg {
		row := payoffs[i]
		for j := range result {
			result[j] += p * (-row[j])
		}
	}
}

func getRowUtilities(payoffs [][]float64, colAvg, result []float64) {
	for i := range result {
		row := payoffs[i]
		u := 0.0
		for j, p := range colAvg {
			u += p * row[j]
		}
		result[i] = u
	}
}

// blend moves avg toward the pure strategy selected by br with the given
// weight, and returns the largest absolute change of any entry.
func blend(avg []float64, br int, weight float64) float64 {
	maxDelta := 0.0
	for k, v := range avg {
		target := 0.0
		if k == br {
			target = 1.0
		}

		updated := (1-weight)*v + weight*target
		if d := math.Abs(updated - v); d > maxDelta {
			maxDelta = d
		}
		avg[k] = updated
	}

	return maxDelta
}

// normalize rescales v in place to sum to 1, falling back to the uniform
// distribution if the total is not positive.
func normalize(v []float64) []float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}

	if !(total > 0) {
		for i := range v {
			v[i] = 1.0 / float64(len(v))
		}
		return v
	}

	for i := range v {
		v[i] /= total
	}
	return v
}

// Ties go to the lowest index.
func argMax(vs []float64) int {
	best := math.Inf(-1)
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		}
	}

	return bestIdx
}

func uniformDistribution(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = 1.0 / float64(n)
	}
	return result
}
