package schedule

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestAtMostOneIsPairwiseExclusion(t *testing.T) {
	g := NewWithT(t)

	clauses := NewPairwiseEncoder().AtMost(1, []int64{1, 2, 3, 4})

	g.Expect(clauses).To(HaveLen(6)) // C(4,2)
	g.Expect(clauses).To(ContainElements(
		[]int64{-1, -2}, []int64{-1, -3}, []int64{-1, -4},
		[]int64{-2, -3}, []int64{-2, -4}, []int64{-3, -4},
	))
}

func TestAtMostTwoForbidsTriples(t *testing.T) {
	g := NewWithT(t)

	clauses := NewPairwiseEncoder().AtMost(2, []int64{1, 2, 3, 4})

	g.Expect(clauses).To(HaveLen(4)) // C(4,3)
	g.Expect(clauses).To(ContainElements(
		[]int64{-1, -2, -3}, []int64{-1, -2, -4},
		[]int64{-1, -3, -4}, []int64{-2, -3, -4},
	))
}

func TestAtMostIsVacuousForSmallSets(t *testing.T) {
	g := NewWithT(t)

	encoder := NewPairwiseEncoder()
	g.Expect(encoder.AtMost(1, []int64{7})).To(BeEmpty())
	g.Expect(encoder.AtMost(3, []int64{1, 2, 3})).To(BeEmpty())
	g.Expect(encoder.AtMost(2, nil)).To(BeEmpty())
}

func TestAtMostClauseGrowth(t *testing.T) {
	g := NewWithT(t)

	literals := make([]int64, 18)
	for i := range literals {
		literals[i] = int64(i + 1)
	}

	g.Expect(NewPairwiseEncoder().AtMost(2, literals)).To(HaveLen(816)) // C(18,3)
}
