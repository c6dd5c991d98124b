package api

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/nashsolver/matrixgame"
)

var ErrLabelCount = errors.New("number of labels does not match number of rows")

func solve(solver *matrixgame.CachedSolver, req *SolveRequest) (*SolveResponse, error) {
	if err := matrixgame.Validate(req.Payoffs); err != nil {
		return nil, err
	}

	if req.Labels != nil && len(req.Labels) != len(req.Payoffs) {
		return nil, errors.Wrapf(ErrLabelCount, "got %d labels for %d rows",
			len(req.Labels), len(req.Payoffs))
	}

	result := solver.Solve(req.Payoffs)
	resp := &SolveResponse{
		Strategy:       result.RowStrategy,
		ColStrategy:    result.ColStrategy,
		Value:          matrixgame.ExpectedPayoff(req.Payoffs, result.RowStrategy, result.ColStrategy),
		Exploitability: matrixgame.Exploitability(req.Payoffs, result.RowStrategy, result.ColStrategy),
		Iterations:     result.Iterations,
	}

	if req.Labels != nil {
		resp.Probabilities = make(map[string]float64, len(req.Labels))
		for i, label := range req.Labels {
			resp.Probabilities[label] += result.RowStrategy[i]
		}
	}

	return resp, nil
}
