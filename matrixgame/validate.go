package matrixgame

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrJagged    = errors.New("payoff matrix rows have different lengths")
	ErrNonFinite = errors.New("payoff matrix has a NaN or infinite entry")
)

// Validate checks that payoffs is a rectangular matrix of finite numbers,
// which FictitiousPlay assumes without checking. Empty matrices are valid.
// Use errors.Cause to compare the result against ErrJagged or ErrNonFinite.
func Validate(payoffs [][]float64) error {
	if len(payoffs) == 0 {
		return nil
	}

	nCols := len(payoffs[0])
	for i, row := range payoffs {
		if len(row) != nCols {
			return errors.Wrapf(ErrJagged, "row %d has %d entries, expected %d", i, len(row), nCols)
		}

		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return errors.Wrapf(ErrNonFinite, "entry (%d, %d) is %v", i, j, x)
			}
		}
	}

	return nil
}
