package pong

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/pong/ecs"
)

// Autopilot steers one paddle toward where the ball will cross its line.
// Each approach is aimed with a random offset of up to AimError pixels.
type Autopilot struct {
	Side     Side
	AimError float64
	// Deadzone stops the paddle from jittering around its target.
	Deadzone float64

	rng         *rand.Rand
	offset      float64
	approaching bool
}

func NewAutopilot(side Side, aimError float64, seed uint64) *Autopilot {
	return &Autopilot{
		Side:     side,
		AimError: aimError,
		Deadzone: 2,
		rng:      rand.New(rand.NewPCG(seed, uint64(side)+1)),
	}
}

// Steer returns the direction to move a paddle at paddleY. ball is nil when
// no rally is running.
func (a *Autopilot) Steer(ball *Ball, paddleY float64) Direction {
	target := float64(ScreenHeight / 2)
	lineX := float64(PaddleInset)
	if a.Side == Right {
		lineX = ScreenWidth - PaddleInset
	}

	incoming := ball != nil && ball.Right == (a.Side == Right)
	if incoming {
		if !a.approaching {
			a.offset = (a.rng.Float64()*2 - 1) * a.AimError
		}
		target = interceptY(ball, lineX) + a.offset
	}
	a.approaching = incoming

	switch {
	case paddleY > target+a.Deadzone:
		return Up
	case paddleY < target-a.Deadzone:
		return Down
	default:
		return Stay
	}
}

// interceptY predicts the ball's height when it reaches lineX, folding the
// path at the top and bottom bounce lines. Both axes move at the same speed.
func interceptY(ball *Ball, lineX float64) float64 {
	const lo, hi = BallMargin, ScreenHeight - BallMargin
	dist := math.Abs(lineX - ball.X)
	y := ball.Y + signed(dist, ball.Down)

	span := float64(hi - lo)
	t := math.Mod(y-lo, 2*span)
	if t < 0 {
		t += 2 * span
	}
	if t > span {
		t = 2*span - t
	}
	return lo + t
}

// AutopilotSystem writes the controls for the next step: every pilot steers
// its paddle and a new rally is served whenever the match is idle.
type AutopilotSystem struct {
	Pilots []*Autopilot

	Match    ecs.Singleton[Match]
	Controls ecs.Singleton[Controls]
	Paddles  ecs.Query[struct{ *Paddle }]
	Balls    ecs.Query[struct{ *Ball }]
}

func (s *AutopilotSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	controls := s.Controls.Get()
	*controls = Controls{Serve: !match.Running}

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

	for _, pilot := range s.Pilots {
		controls.Move[pilot.Side] = pilot.Steer(ball, paddleY[pilot.Side])
	}
}
