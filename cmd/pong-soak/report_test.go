package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestMatchStatsSystem(t *testing.T) {
	world := pong.NewWorld(pong.DefaultOptions())
	world.Register(&pong.AutopilotSystem{Pilots: []*pong.Autopilot{
		pong.NewAutopilot(pong.Left, 40, 3),
		pong.NewAutopilot(pong.Right, 40, 4),
	}})
	stats := &MatchStats{}
	world.Register(&MatchStatsSystem{Stats: stats})

	for range 20000 {
		world.Scheduler.Once(1.0 / pong.TargetTPS)
	}

	m := world.Match()
	assert.Equal(t, m.Scores, stats.Points)
	assert.Equal(t, m.Games, stats.Serves)
	assert.Positive(t, stats.PaddleHits)
	assert.Positive(t, stats.WallBounces)
	assert.GreaterOrEqual(t, stats.LongestRally, int(stats.AvgRally()))
}

func TestReportGenerate(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	report := &Report{
		Duration:     time.Second,
		TwoPlayer:    true,
		Seed:         7,
		AimError:     12,
		TotalUpdates: 60,
		TotalTime:    time.Second,
		UpdateTime:   Stats{Samples: []time.Duration{time.Microsecond}},
		Match: &MatchStats{
			Serves:       3,
			Points:       [2]int{2, 1},
			PaddleHits:   9,
			LongestRally: 5,
			TotalRally:   9,
		},
		Final:     pong.Match{Games: 3, Scores: [2]int{2, 1}},
		Scheduler: ecs.NewScheduler(storage).GetStats(),
		Storage:   storage.CollectStats(),
	}
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Pong Soak Report")
	assert.Contains(t, out, "**Tick:** unthrottled")
	assert.Contains(t, out, "**Mode:** two autopilots")
	assert.Contains(t, out, "**Points:** left 2, right 1")
	assert.Contains(t, out, "**Average Rally:** 3.00")
	assert.Contains(t, out, "**Final Score:** 2-1 after 3 games")
	assert.Contains(t, out, "**Avg:** 1µs")
}
