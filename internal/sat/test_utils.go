package sat

import "math/rand/v2"

// GenerateSATInstance builds a random instance over the given number of
// variables; every variable joins each clause with probability 1/2, and empty
// clauses are patched with a single random literal.
func GenerateSATInstance(variables uint64, clauses int) SAT {
	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	randomSign := func() int64 {
		if rand.Float32() < 0.5 {
			return -1
		}
		return 1
	}

	for i := range clauses {
		clause := make([]int64, 0, variables)
		for variable := range variables {
			if rand.Float32() < 0.5 {
				clause = append(clause, randomSign()*(1+int64(variable)))
			}
		}
		if len(clause) == 0 {
			clause = append(clause, randomSign()*(1+rand.Int64N(int64(variables))))
		}
		instance.Clauses[i] = clause
	}

	return instance
}

// AssertSATSolution reports whether the solution is consistent (no duplicate
// or contradictory literals) and satisfies every clause of the instance.
func AssertSATSolution(instance SAT, solution SATSolution) bool {
	literals := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	for _, clause := range instance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
