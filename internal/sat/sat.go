package sat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SATSolution is the model reported by a solver: one signed literal per
// variable, where a positive literal means the variable is true.
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder)
	return builder.String()
}

// WriteDIMACS serializes the instance in DIMACS-CNF format: a "p cnf" header
// followed by one 0-terminated clause per line.
func (s SAT) WriteDIMACS(w io.Writer) error {
	buffered := bufio.NewWriter(w)
	fmt.Fprintf(buffered, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(buffered, "%d ", literal)
		}
		buffered.WriteString("0\n")
	}
	return buffered.Flush()
}
