package sat

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

const glucoseDefaultPath = "glucose-syrup"

// glucoseSolver invokes glucose over a CNF file path instead of stdin, since
// glucose-syrup refuses piped input in its multithreaded configuration.
type glucoseSolver struct{}

func NewGlucoseSolver() SATSolver {
	return &glucoseSolver{}
}

func (solver *glucoseSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create temporary file: %v", ErrSolverFailure, err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	if err := instance.WriteDIMACS(inputTempFile); err != nil {
		return nil, fmt.Errorf("%w: cannot write DIMACS to temporary file: %v", ErrSolverFailure, err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("%w: cannot close temporary file: %v", ErrSolverFailure, err)
	}

	cmd := exec.CommandContext(ctx, getExecutablePath("glucosePath", glucoseDefaultPath), "-model", "-verb=0", inputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: glucose was interrupted: %v", ErrSolverTimeout, ctx.Err())
	} else if err != nil && cmd.ProcessState == nil {
		return nil, fmt.Errorf("%w: cannot start glucose: %v", ErrSolverFailure, err)
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != 10 && exitCode != 20 {
		return nil, fmt.Errorf("%w: glucose exited abnormally: %v : %v", ErrSolverFailure, err, stderr.String())
	} else if exitCode == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String())
}
