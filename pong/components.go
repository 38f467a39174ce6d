package pong

// Side identifies a player by the half of the field they defend.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

// Direction is a vertical paddle intent.
type Direction int

const (
	Up   Direction = -1
	Stay Direction = 0
	Down Direction = 1
)

// Paddle is a player's bat. Y is the centre of the paddle.
type Paddle struct {
	Side Side
	Y    float64
	Dir  Direction
}

// Ball moves diagonally at a fixed speed; bounces only flip its direction.
// It exists only while a rally is running.
type Ball struct {
	X, Y  float64
	Right bool
	Down  bool
}

// Match holds the state shared by every system.
type Match struct {
	Running   bool
	TwoPlayer bool
	// HalfSize is half the paddle length.
	HalfSize float64
	// Games counts serves and picks the serve direction.
	Games  int
	Scores [2]int
	// Rally counts paddle hits since the last serve.
	Rally int
}

// Controls carries the player intents for one step.
type Controls struct {
	Quit            bool
	Serve           bool
	ToggleMode      bool
	CycleDifficulty bool
	Move            [2]Direction
}

// Tuning holds the timing knobs loaded from configuration.
type Tuning struct {
	Speed        float64
	MaxFrameTime float64
}

// Line is a stroked segment in logical pixels.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// Scene is rebuilt every step and consumed by the renderer.
type Scene struct {
	Lines  []Line
	Status string
}
