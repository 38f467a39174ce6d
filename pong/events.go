package pong

import "fmt"

type EventKind int

const (
	EventServe EventKind = iota
	EventPause
	EventPaddleHit
	EventWallBounce
	EventPoint
	EventModeChanged
	EventDifficultyChanged
)

var eventKindNames = [...]string{
	EventServe:             "serve",
	EventPause:             "pause",
	EventPaddleHit:         "paddle hit",
	EventWallBounce:        "wall bounce",
	EventPoint:             "point",
	EventModeChanged:       "mode changed",
	EventDifficultyChanged: "difficulty changed",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// Event records something that happened during a step. Match is a snapshot
// taken right after the change.
type Event struct {
	Kind  EventKind
	Side  Side
	Match Match
}

func (e Event) String() string {
	switch e.Kind {
	case EventServe:
		return fmt.Sprintf("serve #%d", e.Match.Games)
	case EventPoint:
		return fmt.Sprintf("point %s after %d hits, score %d-%d", e.Side, e.Match.Rally, e.Match.Scores[Left], e.Match.Scores[Right])
	case EventPaddleHit:
		return fmt.Sprintf("%s paddle hit, rally %d", e.Side, e.Match.Rally)
	case EventModeChanged:
		return "mode " + modeName(e.Match.TwoPlayer)
	case EventDifficultyChanged:
		return fmt.Sprintf("paddle half-size %g", e.Match.HalfSize)
	default:
		return e.Kind.String()
	}
}

// Events is cleared at the start of every step.
type Events struct {
	Items []Event
}

func (e *Events) emit(kind EventKind, side Side, m *Match) {
	e.Items = append(e.Items, Event{Kind: kind, Side: side, Match: *m})
}

func modeName(twoPlayer bool) string {
	if twoPlayer {
		return "two players"
	}
	return "practice"
}
