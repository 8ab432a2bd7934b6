package schedule

import (
	"context"

	"roundrobin/internal/sat"
)

// Scheduler builds single round-robin tournament schedules: numTeams teams,
// numTeams-1 weeks, numTeams/2 periods per week, every pair meeting exactly
// once, no team playing twice in a week and no team playing more than twice
// in the same period across the tournament.
type Scheduler interface {
	// Encode builds the CNF instance for the given team count, which must be
	// even and positive
	Encode(numTeams int) (sat.SAT, error)

	// Build returns a schedule for the given team count if one exists, else
	// returns nil (a valid outcome where error shall be nil)
	Build(ctx context.Context, numTeams int) (Schedule, error)

	// Verify re-checks a schedule against the scheduling rules independently
	// of the solver
	Verify(schedule Schedule, numTeams int) bool
}

func NewScheduler(solver sat.SATSolver) Scheduler {
	return newSatScheduler(solver)
}
