package main

import (
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

// MatchStats accumulates what happened over a soak run.
type MatchStats struct {
	Serves       int
	Points       [2]int
	PaddleHits   int
	WallBounces  int
	LongestRally int
	TotalRally   int
}

// AvgRally is the mean number of paddle hits per point.
func (m *MatchStats) AvgRally() float64 {
	points := m.Points[pong.Left] + m.Points[pong.Right]
	if points == 0 {
		return 0
	}
	return float64(m.TotalRally) / float64(points)
}

// MatchStatsSystem folds each step's events into Stats. Register it after
// the game systems so it sees the events of the current step.
type MatchStatsSystem struct {
	Events ecs.Singleton[pong.Events]
	Stats  *MatchStats
}

func (s *MatchStatsSystem) Execute(frame *ecs.UpdateFrame) {
	for _, e := range s.Events.Get().Items {
		switch e.Kind {
		case pong.EventServe:
			s.Stats.Serves++
		case pong.EventPaddleHit:
			s.Stats.PaddleHits++
		case pong.EventWallBounce:
			s.Stats.WallBounces++
		case pong.EventPoint:
			s.Stats.Points[e.Side]++
			s.Stats.TotalRally += e.Match.Rally
			s.Stats.LongestRally = max(s.Stats.LongestRally, e.Match.Rally)
		}
	}
}
