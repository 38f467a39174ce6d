package pong

import (
	"math"

	"github.com/plus3/pong/ecs"
)

// ClearEventsSystem empties the event list so each step reports only its own events.
type ClearEventsSystem struct {
	Events ecs.Singleton[Events]
}

func (s *ClearEventsSystem) Execute(frame *ecs.UpdateFrame) {
	events := s.Events.Get()
	clear(events.Items)
	events.Items = events.Items[:0]
}

// ControlSystem applies the step's controls to the match and the paddles.
// Only one action runs per step: serve wins over a mode toggle, which wins
// over a difficulty change.
type ControlSystem struct {
	Match    ecs.Singleton[Match]
	Controls ecs.Singleton[Controls]
	Events   ecs.Singleton[Events]
	Paddles  ecs.Query[struct{ *Paddle }]
	Balls    ecs.Query[struct{ *Ball }]
}

func (s *ControlSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	controls := s.Controls.Get()
	events := s.Events.Get()

	switch {
	case controls.Serve:
		if match.Running {
			match.Running = false
			for id := range s.Balls.Iter() {
				frame.Commands.Delete(id)
			}
			events.emit(EventPause, Left, match)
			break
		}
		match.Running = true
		match.Games++
		match.Rally = 0
		frame.Commands.Spawn(serveBall(match.Games))
		events.emit(EventServe, Left, match)

	case controls.ToggleMode:
		if !match.Running {
			match.TwoPlayer = !match.TwoPlayer
			match.Scores = [2]int{}
			events.emit(EventModeChanged, Left, match)
		}

	case controls.CycleDifficulty:
		if !match.Running {
			match.HalfSize = nextHalfSize(match.HalfSize)
			events.emit(EventDifficultyChanged, Left, match)
		}
	}

	for item := range s.Paddles.Values() {
		paddle := item.Paddle
		if paddle.Side == Right && !match.TwoPlayer {
			paddle.Dir = Stay
			continue
		}
		paddle.Dir = controls.Move[paddle.Side]
	}
}

// serveBall places a ball at the centre. The serve direction rotates through
// the four diagonals as games are played.
func serveBall(games int) Ball {
	return Ball{
		X:     ScreenWidth / 2,
		Y:     ScreenHeight / 2,
		Right: games%2 == 0,
		Down:  games%4 > 1,
	}
}

func nextHalfSize(half float64) float64 {
	half *= 2
	if half > MaxPaddleHalfSize {
		half = MinPaddleHalfSize
	}
	return half
}

// elapsedMillis converts a frame's delta time into simulated milliseconds.
func elapsedMillis(dt float64, tuning *Tuning) float64 {
	return min(dt*1000, tuning.MaxFrameTime) * tuning.Speed
}

// PaddleSystem moves the paddles and keeps them inside the playfield.
type PaddleSystem struct {
	Match   ecs.Singleton[Match]
	Tuning  ecs.Singleton[Tuning]
	Paddles ecs.Query[struct{ *Paddle }]
}

func (s *PaddleSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	elapsed := elapsedMillis(frame.DeltaTime, s.Tuning.Get())

	for item := range s.Paddles.Values() {
		paddle := item.Paddle
		if paddle.Side == Right && !match.TwoPlayer {
			continue
		}
		paddle.Y += float64(paddle.Dir) * PaddleSpeed * elapsed
		paddle.Y = clampPaddle(paddle.Y, match.HalfSize)
	}
}

func clampPaddle(y, half float64) float64 {
	return min(max(y, half), ScreenHeight-half)
}

// BallSystem advances the ball, bounces it off walls and paddles, and awards
// points when it leaves the field.
type BallSystem struct {
	Match   ecs.Singleton[Match]
	Tuning  ecs.Singleton[Tuning]
	Events  ecs.Singleton[Events]
	Paddles ecs.Query[struct{ *Paddle }]
	Balls   ecs.Query[struct{ *Ball }]
}

func (s *BallSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	if !match.Running {
		return
	}
	events := s.Events.Get()
	elapsed := elapsedMillis(frame.DeltaTime, s.Tuning.Get())

	var paddleY [2]float64
	for item := range s.Paddles.Values() {
		paddleY[item.Paddle.Side] = item.Paddle.Y
	}

	for id, item := range s.Balls.Iter() {
		ball := item.Ball
		step := BallSpeed * elapsed
		ball.X += signed(step, ball.Right)
		ball.Y += signed(step, ball.Down)

		if ball.Y < BallMargin && !ball.Down {
			ball.Down = true
			events.emit(EventWallBounce, Left, match)
		}
		if ball.Y > ScreenHeight-BallMargin && ball.Down {
			ball.Down = false
			events.emit(EventWallBounce, Left, match)
		}

		if !ball.Right && inHitZone(ball.X, PaddleInset) && withinPaddle(ball.Y, paddleY[Left], match.HalfSize) {
			ball.Right = true
			match.Rally++
			if !match.TwoPlayer {
				match.Scores[Left]++
			}
			events.emit(EventPaddleHit, Left, match)
		}

		if ball.Right {
			switch {
			case match.TwoPlayer:
				if inHitZone(ball.X, ScreenWidth-PaddleInset) && withinPaddle(ball.Y, paddleY[Right], match.HalfSize) {
					ball.Right = false
					match.Rally++
					events.emit(EventPaddleHit, Right, match)
				}
			case ball.X > ScreenWidth-PaddleInset-HitZone:
				ball.Right = false
				events.emit(EventWallBounce, Right, match)
			}
		}

		var scorer Side
		switch {
		case ball.X < 0:
			scorer = Right
		case ball.X > ScreenWidth:
			scorer = Left
		default:
			continue
		}
		match.Scores[scorer]++
		match.Running = false
		frame.Commands.Delete(id)
		events.emit(EventPoint, scorer, match)
	}
}

func signed(v float64, positive bool) float64 {
	if positive {
		return v
	}
	return -v
}

func inHitZone(x, line float64) bool {
	return x > line-HitZone && x < line+HitZone
}

func withinPaddle(y, paddleY, half float64) bool {
	return math.Abs(y-paddleY) < half
}

// SceneSystem rebuilds the draw list from the current state.
type SceneSystem struct {
	Match   ecs.Singleton[Match]
	Scene   ecs.Singleton[Scene]
	Paddles ecs.Query[struct{ *Paddle }]
	Balls   ecs.Query[struct{ *Ball }]
}

func (s *SceneSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()

	var paddleY [2]float64
	for item := range s.Paddles.Values() {
		paddleY[item.Paddle.Side] = item.Paddle.Y
	}

	var ball *Ball
	if match.Running {
		for item := range s.Balls.Values() {
			ball = item.Ball
		}
	}

	scene := s.Scene.Get()
	scene.Lines = AppendScene(scene.Lines[:0], match, paddleY, ball)
	scene.Status = ""
	if !match.Running {
		scene.Status = StatusLine(match)
	}
}
