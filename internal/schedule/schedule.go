package schedule

// Match is one scheduled game; Host plays at home.
type Match struct {
	Host  uint64
	Guest uint64
}

// Schedule is a week-by-period grid; a nil cell is an idle slot.
type Schedule [][]*Match

func newSchedule(weeks, periods uint64) Schedule {
	schedule := make(Schedule, weeks)
	for week := range schedule {
		schedule[week] = make([]*Match, periods)
	}
	return schedule
}
