package sat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const cryptominisatDefaultPath = "cryptominisat"

type cryptominisatSolver struct{}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	cmd := exec.CommandContext(ctx, getExecutablePath("cryptominisatPath", cryptominisatDefaultPath), "--verb", "0")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: cryptominisat was interrupted: %v", ErrSolverTimeout, ctx.Err())
	} else if err != nil && cmd.ProcessState == nil {
		return nil, fmt.Errorf("%w: cannot start cryptominisat: %v", ErrSolverFailure, err)
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != 10 && exitCode != 20 {
		return nil, fmt.Errorf("%w: cryptominisat exited abnormally: %v : %v", ErrSolverFailure, err, stderr.String())
	} else if exitCode == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String())
}
