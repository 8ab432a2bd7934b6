package schedule

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"roundrobin/internal/sat"
)

type satScheduler struct {
	//** Dependencies
	solver      sat.SATSolver
	cardinality CardinalityEncoder
	indexer     Indexer

	numTeams   uint64
	numWeeks   uint64
	numPeriods uint64
}

func newSatScheduler(solver sat.SATSolver) *satScheduler {
	return &satScheduler{
		solver:      solver,
		cardinality: NewPairwiseEncoder(),
	}
}

func (scheduler *satScheduler) Encode(numTeams int) (sat.SAT, error) {
	// Validate before any variable allocation
	if numTeams <= 0 || numTeams%2 != 0 {
		return sat.SAT{}, fmt.Errorf("team count must be a positive even number, got %d", numTeams)
	}

	scheduler.numTeams = uint64(numTeams)
	scheduler.numWeeks = scheduler.numTeams - 1
	scheduler.numPeriods = scheduler.numTeams / 2
	scheduler.indexer = NewIndexer()

	//** Build SAT instance
	instance := sat.SAT{Clauses: [][]int64{}}
	instance.Clauses = append(instance.Clauses, scheduler.pairConstraints()...)
	instance.Clauses = append(instance.Clauses, scheduler.weeklyConstraints()...)
	instance.Clauses = append(instance.Clauses, scheduler.periodConstraints()...)
	instance.Clauses = append(instance.Clauses, scheduler.slotConstraints()...)
	instance.Clauses = append(instance.Clauses, scheduler.weekCoverageConstraints()...)
	instance.Variables = scheduler.indexer.Len()

	return instance, nil
}

func (scheduler *satScheduler) Build(ctx context.Context, numTeams int) (Schedule, error) {
	instance, err := scheduler.Encode(numTeams)
	if err != nil {
		return nil, err
	}

	//** Solve SAT instance
	solution, err := scheduler.solver.Solve(ctx, instance)
	if err != nil {
		return nil, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, nil
	}

	return scheduler.decode(solution), nil
}

// Each pair of teams meets exactly once across every week, period and
// home/away orientation.
func (scheduler *satScheduler) pairConstraints() [][]int64 {
	clauses := [][]int64{}

	for team1 := range scheduler.numTeams {
		for team2 := team1 + 1; team2 < scheduler.numTeams; team2++ {
			candidates := make([]int64, 0, 2*scheduler.numWeeks*scheduler.numPeriods)
			for week := range scheduler.numWeeks {
				for period := range scheduler.numPeriods {
					candidates = append(candidates,
						int64(scheduler.indexer.Index(week, period, team1, team2)), // team1 at home
						int64(scheduler.indexer.Index(week, period, team2, team1)), // team2 at home
					)
				}
			}

			clauses = append(clauses, slices.Clone(candidates)) // At least one match
			clauses = append(clauses, scheduler.cardinality.AtMost(1, candidates)...)
		}
	}

	return clauses
}

// A team plays at most once within a week.
func (scheduler *satScheduler) weeklyConstraints() [][]int64 {
	clauses := [][]int64{}

	for week := range scheduler.numWeeks {
		for team := range scheduler.numTeams {
			appearances := []int64{}
			for period := range scheduler.numPeriods {
				for opponent := range scheduler.numTeams {
					if opponent == team {
						continue
					}
					appearances = append(appearances,
						int64(scheduler.indexer.Index(week, period, team, opponent)),
						int64(scheduler.indexer.Index(week, period, opponent, team)),
					)
				}
			}
			clauses = append(clauses, scheduler.cardinality.AtMost(1, appearances)...)
		}
	}

	return clauses
}

// A team appears at most twice in the same period over the whole tournament,
// keeping early/late slots reasonably balanced.
func (scheduler *satScheduler) periodConstraints() [][]int64 {
	clauses := [][]int64{}

	for period := range scheduler.numPeriods {
		for team := range scheduler.numTeams {
			appearances := []int64{}
			for week := range scheduler.numWeeks {
				for opponent := range scheduler.numTeams {
					if opponent == team {
						continue
					}
					appearances = append(appearances,
						int64(scheduler.indexer.Index(week, period, team, opponent)),
						int64(scheduler.indexer.Index(week, period, opponent, team)),
					)
				}
			}
			clauses = append(clauses, scheduler.cardinality.AtMost(2, lo.Uniq(appearances))...)
		}
	}

	return clauses
}

// A slot holds at most one match.
func (scheduler *satScheduler) slotConstraints() [][]int64 {
	clauses := [][]int64{}

	for week := range scheduler.numWeeks {
		for period := range scheduler.numPeriods {
			candidates := []int64{}
			for team1 := range scheduler.numTeams {
				for team2 := team1 + 1; team2 < scheduler.numTeams; team2++ {
					candidates = append(candidates,
						int64(scheduler.indexer.Index(week, period, team1, team2)),
						int64(scheduler.indexer.Index(week, period, team2, team1)),
					)
				}
			}
			clauses = append(clauses, scheduler.cardinality.AtMost(1, candidates)...)
		}
	}

	return clauses
}

// Every week hosts at least one match, ruling out the all-idle week.
func (scheduler *satScheduler) weekCoverageConstraints() [][]int64 {
	clauses := [][]int64{}

	for week := range scheduler.numWeeks {
		candidates := []int64{}
		for period := range scheduler.numPeriods {
			for team1 := range scheduler.numTeams {
				for team2 := team1 + 1; team2 < scheduler.numTeams; team2++ {
					candidates = append(candidates,
						int64(scheduler.indexer.Index(week, period, team1, team2)),
						int64(scheduler.indexer.Index(week, period, team2, team1)),
					)
				}
			}
		}
		clauses = append(clauses, candidates)
	}

	return clauses
}

func (scheduler *satScheduler) decode(solution sat.SATSolution) Schedule {
	schedule := newSchedule(scheduler.numWeeks, scheduler.numPeriods)

	for _, literal := range solution {
		if literal <= 0 {
			continue
		}
		week, period, host, guest, ok := scheduler.indexer.Attributes(uint64(literal))
		if !ok { // Skip variables the indexer never allocated
			continue
		}
		schedule[week][period] = &Match{Host: host, Guest: guest}
	}

	return schedule
}

func (scheduler *satScheduler) Verify(schedule Schedule, numTeams int) bool {
	if numTeams <= 0 || numTeams%2 != 0 {
		return false
	}

	teams := uint64(numTeams)
	weeks := teams - 1
	periods := teams / 2

	if uint64(len(schedule)) != weeks {
		return false
	}

	pairMeetings := make(map[[2]uint64]uint64)
	periodAppearances := make(map[[2]uint64]uint64)

	for _, row := range schedule {
		if uint64(len(row)) != periods {
			return false
		}

		weekAppearances := make(map[uint64]bool, teams)
		for period, match := range row {
			if match == nil { // Idle slot
				continue
			}
			if match.Host >= teams || match.Guest >= teams || match.Host == match.Guest {
				return false
			}

			// Check that neither team is already playing this week
			if weekAppearances[match.Host] || weekAppearances[match.Guest] {
				return false
			}
			weekAppearances[match.Host] = true
			weekAppearances[match.Guest] = true

			pair := [2]uint64{min(match.Host, match.Guest), max(match.Host, match.Guest)}
			pairMeetings[pair]++

			periodAppearances[[2]uint64{uint64(period), match.Host}]++
			periodAppearances[[2]uint64{uint64(period), match.Guest}]++
		}
	}

	// Check that no team exceeds two appearances in the same period
	for _, appearances := range periodAppearances {
		if appearances > 2 {
			return false
		}
	}

	// Check that every pair met exactly once, in exactly one orientation
	if uint64(len(pairMeetings)) != teams*(teams-1)/2 {
		return false
	}
	return !lo.SomeBy(lo.Values(pairMeetings), func(meetings uint64) bool {
		return meetings != 1
	})
}
