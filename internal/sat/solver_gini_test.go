package sat

import (
	"context"
	"log"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiniSatisfiable(t *testing.T) {
	solver := NewGiniSolver()
	unsatisfiableCount := 0

	for range 10 {
		variables := uint64(rand.IntN(100) + 1)
		clauses := rand.IntN(200) + 1
		instance := GenerateSATInstance(variables, clauses)

		solution, err := solver.Solve(context.Background(), instance)
		require.NoError(t, err)

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		assert.True(t, AssertSATSolution(instance, solution))
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestGiniUnsatisfiableInstance(t *testing.T) {
	instance := SAT{
		Variables: 1,
		Clauses:   [][]int64{{1}, {-1}},
	}

	solution, err := NewGiniSolver().Solve(context.Background(), instance)
	require.NoError(t, err)
	assert.Nil(t, solution)
}

func TestGiniHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGiniSolver().Solve(ctx, GenerateSATInstance(10, 20))
	assert.ErrorIs(t, err, ErrSolverTimeout)
}
