package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"roundrobin/internal/sat"
	scheduling "roundrobin/internal/schedule"
)

var solvers = map[string]func() sat.SATSolver{
	"gini":          sat.NewGiniSolver,
	"kissat":        sat.NewKissatSolver,
	"cadical":       sat.NewCadicalSolver,
	"cryptominisat": sat.NewCryptominisatSolver,
	"glucose":       sat.NewGlucoseSolver,
}

func NewScheduleCommand() *cobra.Command {
	var (
		solverName string
		timeout    time.Duration
		outputCNF  string
	)

	cmd := &cobra.Command{
		Use:   "schedule <teams>",
		Short: "Builds a round-robin schedule for an even number of teams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numTeams, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("team count must be an integer: %v", args[0])
			}

			newSolver, ok := solvers[strings.ToLower(solverName)]
			if !ok {
				return fmt.Errorf("%v is not a valid solver", solverName)
			}

			return run(cmd.OutOrStdout(), numTeams, newSolver(), timeout, outputCNF)
		},
	}

	cmd.Flags().StringVar(&solverName, "solver", "gini", `SAT-Solver to use. Allowed values are: "gini", "kissat", "cadical", "cryptominisat", "glucose", where "gini" runs in-process and is the default`)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Upper bound on solver run time; 0 waits indefinitely")
	cmd.Flags().StringVar(&outputCNF, "output-cnf", "", "Path where the generated CNF formula is also written, independent of solving")

	return cmd
}

func run(out io.Writer, numTeams int, solver sat.SATSolver, timeout time.Duration, outputCNF string) error {
	scheduler := scheduling.NewScheduler(solver)

	if outputCNF != "" {
		instance, err := scheduler.Encode(numTeams)
		if err != nil {
			return fmt.Errorf("cannot encode tournament: %w", err)
		}
		if err := writeCNF(instance, outputCNF); err != nil {
			return err
		}
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	schedule, err := scheduler.Build(ctx, numTeams)
	if err != nil {
		switch {
		case errors.Is(err, sat.ErrSolverTimeout):
			return fmt.Errorf("solver gave no verdict within %v: %w", timeout, err)
		case errors.Is(err, sat.ErrSolverFailure), errors.Is(err, sat.ErrUnparseableOutput):
			return fmt.Errorf("solver invocation failed: %w", err)
		default:
			return fmt.Errorf("cannot encode tournament: %w", err)
		}
	} else if schedule == nil {
		fmt.Fprintf(out, "No schedule exists for %d teams.\n", numTeams)
		return nil
	}

	if !scheduler.Verify(schedule, numTeams) {
		return fmt.Errorf("solver returned a schedule violating the tournament rules")
	}

	fmt.Fprintf(out, "Schedule for %d teams:\n", numTeams)
	renderSchedule(out, schedule)
	return nil
}

func writeCNF(instance sat.SAT, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CNF file: %v", err)
	}
	defer file.Close()

	if err := instance.WriteDIMACS(file); err != nil {
		return fmt.Errorf("cannot write CNF file: %v", err)
	}
	return nil
}

// renderSchedule prints weeks as columns and periods as rows; idle slots show
// as dashes.
func renderSchedule(out io.Writer, schedule scheduling.Schedule) {
	fmt.Fprint(out, "\t")
	for week := range schedule {
		fmt.Fprintf(out, "Week %d\t", week+1)
	}
	fmt.Fprintln(out)

	for period := range schedule[0] {
		fmt.Fprintf(out, "Period %d\t", period+1)
		for week := range schedule {
			cell := "-----"
			if match := schedule[week][period]; match != nil {
				cell = fmt.Sprintf("%d v %d", match.Host, match.Guest)
			}
			fmt.Fprintf(out, "%-8s\t", cell)
		}
		fmt.Fprintln(out)
	}
}
