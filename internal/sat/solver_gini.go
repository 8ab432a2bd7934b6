package sat

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSolver runs gini in-process, so no external binary is needed. Useful
// as a default backend and for tests.
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverTimeout, ctx.Err())
	}

	g := gini.NewVc(int(instance.Variables), len(instance.Clauses))
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			if literal > 0 {
				g.Add(z.Var(literal).Pos())
			} else {
				g.Add(z.Var(-literal).Neg())
			}
		}
		g.Add(z.LitNull) // End of clause
	}

	result := make(chan int, 1)
	go func() { result <- g.Solve() }()

	var outcome int
	select {
	case <-ctx.Done():
		// The search goroutine is abandoned; it exits once gini finishes.
		return nil, fmt.Errorf("%w: gini was interrupted: %v", ErrSolverTimeout, ctx.Err())
	case outcome = <-result:
	}

	switch outcome {
	case 1:
		solution := make(SATSolution, 0, instance.Variables)
		for variable := uint64(1); variable <= instance.Variables; variable++ {
			literal := int64(variable)
			if !g.Value(z.Var(variable).Pos()) {
				literal = -literal
			}
			solution = append(solution, literal)
		}
		return solution, nil
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: gini reported an indeterminate result", ErrSolverFailure)
	}
}
