package matrixgame

import (
	"gonum.org/v1/gonum/mat"
)

// ExpectedPayoff is the row player's expected payoff when the row player
// plays the mixed strategy row and the column player plays col.
func ExpectedPayoff(payoffs [][]float64, row, col []float64) float64 {
	if len(row) == 0 || len(col) == 0 {
		return 0
	}

	a := newDense(payoffs)
	return mat.Inner(mat.NewVecDense(len(row), row), a, mat.NewVecDense(len(col), col))
}

// Exploitability is the sum of what each player could gain by deviating to a
// best response: the gap between the best row payoff against col and the
// worst column payoff against row. It is zero exactly at an equilibrium.
func Exploitability(payoffs [][]float64, row, col []float64) float64 {
	if len(row) == 0 || len(col) == 0 {
		return 0
	}

	a := newDense(payoffs)
	var rowPayoffs, colPayoffs mat.VecDense
	rowPayoffs.MulVec(a, mat.NewVecDense(len(col), col))
	colPayoffs.MulVec(a.T(), mat.NewVecDense(len(row), row))
	return mat.Max(&rowPayoffs) - mat.Min(&colPayoffs)
}

func newDense(payoffs [][]float64) *mat.Dense {
	nRows, nCols := len(payoffs), len(payoffs[0])
	data := make([]float64, 0, nRows*nCols)
	for _, row := range payoffs {
		data = append(data, row...)
	}

	return mat.NewDense(nRows, nCols, data)
}
