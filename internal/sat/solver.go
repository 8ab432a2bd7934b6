package sat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional JSON file mapping solver names to
// executable paths, e.g. {"kissatPath": "/usr/local/bin/kissat"}.
var ConfigPath = "config.json"

var (
	// ErrSolverFailure covers infrastructure problems: missing executable,
	// abnormal exit, unreadable output file.
	ErrSolverFailure = errors.New("solver execution failed")
	// ErrSolverTimeout is reported when the context expires before the
	// solver reaches a verdict.
	ErrSolverTimeout = errors.New("solver timed out")
	// ErrUnparseableOutput is reported when the solver output carries
	// neither a model line nor an unsatisfiability verdict.
	ErrUnparseableOutput = errors.New("unrecognized solver output")
)

type SATSolver interface {
	// Solve returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
	Solve(ctx context.Context, instance SAT) (SATSolution, error)
}

// parseSolution extracts the model from solver output: every line prefixed
// with 'v' contributes signed literals, and an optional trailing 0 closes the
// model. Output without any value line is a format mismatch, not a verdict.
func parseSolution(solverOutput string) (SATSolution, error) {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return line == "v" || strings.HasPrefix(line, "v ")
	})
	if len(valueLines) == 0 {
		return nil, fmt.Errorf("%w: no value line found", ErrUnparseableOutput)
	}

	// Non-nil even when empty: nil is reserved for the unsatisfiable verdict
	solution := SATSolution{}
	for _, line := range valueLines {
		for _, field := range strings.Fields(line)[1:] {
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid literal %q", ErrUnparseableOutput, field)
			}
			if value == 0 {
				return solution, nil
			}
			solution = append(solution, value)
		}
	}
	return solution, nil
}

// getExecutablePath resolves a solver executable through the config file,
// falling back to the bare binary name so a PATH lookup still works without
// any configuration.
func getExecutablePath(solver, fallback string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return fallback
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return fallback
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	path, ok := config[solver]
	if !ok || path == "" {
		return fallback
	}
	return path
}
