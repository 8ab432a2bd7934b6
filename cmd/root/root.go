package root

import (
	"github.com/spf13/cobra"

	"roundrobin/cmd/cnf"
	"roundrobin/cmd/schedule"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roundrobin",
		Short: "Round-robin tournament scheduling through SAT solving",
		Long: `Encodes a round-robin tournament (every pair of teams meeting exactly once,
one match per team per week, at most two appearances per period) as a CNF
formula, hands it to a SAT solver and decodes the model into a schedule.`,
	}

	// add sub-commands
	rootCmd.AddCommand(schedule.NewScheduleCommand())
	rootCmd.AddCommand(cnf.NewCnfCommand())

	return rootCmd
}
