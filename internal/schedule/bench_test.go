package schedule

import (
	"context"
	"fmt"
	"testing"

	"roundrobin/internal/sat"
)

func BenchmarkEncode(b *testing.B) {
	for _, numTeams := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("%d-teams", numTeams), func(b *testing.B) {
			for range b.N {
				if _, err := newSatScheduler(nil).Encode(numTeams); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildSixTeams(b *testing.B) {
	scheduler := NewScheduler(sat.NewGiniSolver())
	for range b.N {
		if _, err := scheduler.Build(context.Background(), 6); err != nil {
			b.Fatal(err)
		}
	}
}
