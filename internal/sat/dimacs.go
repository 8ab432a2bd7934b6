package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS-CNF formatted instance: comment lines start with
// 'c', the header declares variable and clause counts, and every clause is a
// whitespace-separated run of signed literals terminated by 0. Clauses may
// span lines; the terminating 0 is the only clause boundary.
func ParseDIMACS(r io.Reader) (SAT, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var instance SAT
	var declaredClauses int
	headerSeen := false
	clause := []int64{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		if !headerSeen {
			if _, err := fmt.Sscanf(line, "p cnf %d %d", &instance.Variables, &declaredClauses); err != nil {
				return SAT{}, fmt.Errorf("invalid DIMACS header %q: %v", line, err)
			}
			headerSeen = true
			continue
		}

		for _, field := range strings.Fields(line) {
			literal, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal %q: %v", field, err)
			}

			if literal == 0 {
				instance.Clauses = append(instance.Clauses, clause)
				clause = []int64{}
				continue
			}

			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if uint64(variable) > instance.Variables {
				return SAT{}, fmt.Errorf("literal %d exceeds declared variable count %d", literal, instance.Variables)
			}
			clause = append(clause, literal)
		}
	}
	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("cannot read instance: %v", err)
	}

	if !headerSeen {
		return SAT{}, fmt.Errorf("missing DIMACS header")
	} else if len(clause) > 0 {
		return SAT{}, fmt.Errorf("unterminated clause %v", clause)
	} else if len(instance.Clauses) != declaredClauses {
		return SAT{}, fmt.Errorf("header declares %d clauses but %d were found", declaredClauses, len(instance.Clauses))
	}

	return instance, nil
}
