package schedule

// CardinalityEncoder emits clauses forbidding more than k literals from a set
// being simultaneously true. Constraint assembly only depends on this
// contract, so a sequential-counter or commander encoding can replace the
// naive one without touching the scheduler.
type CardinalityEncoder interface {
	AtMost(k int, literals []int64) [][]int64
}

// NewPairwiseEncoder returns the naive at-most-k encoding: one clause
// negating every (k+1)-subset of the literal set, O(C(n, k+1)) clauses.
func NewPairwiseEncoder() CardinalityEncoder {
	return pairwiseEncoder{}
}

type pairwiseEncoder struct{}

func (pairwiseEncoder) AtMost(k int, literals []int64) [][]int64 {
	if k < 0 || len(literals) <= k {
		return nil
	}

	clauses := [][]int64{}
	subset := make([]int64, k+1)

	var forbid func(start, depth int)
	forbid = func(start, depth int) {
		if depth == len(subset) {
			clause := make([]int64, len(subset))
			for i, literal := range subset {
				clause[i] = -literal
			}
			clauses = append(clauses, clause)
			return
		}
		for i := start; i < len(literals); i++ {
			subset[depth] = literals[i]
			forbid(i+1, depth+1)
		}
	}
	forbid(0, 0)

	return clauses
}
