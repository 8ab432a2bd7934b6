package cnf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	scheduling "roundrobin/internal/schedule"
)

func NewCnfCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "cnf <teams>",
		Short: "Emits the DIMACS-CNF encoding of a tournament without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numTeams, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("team count must be an integer: %v", args[0])
			}

			instance, err := scheduling.NewScheduler(nil).Encode(numTeams)
			if err != nil {
				return fmt.Errorf("cannot encode tournament: %w", err)
			}

			out := cmd.OutOrStdout()
			if outFile != "" {
				file, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("cannot create output file: %v", err)
				}
				defer file.Close()
				out = file
			}

			return instance.WriteDIMACS(out)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Path to the file where the formula will be written; if empty, it'll be written into the Standard Output")

	return cmd
}
