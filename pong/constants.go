package pong

// Playfield size in logical pixels. The renderer scales it to the window.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Timing. Speeds are in logical pixels per millisecond of simulated time.
const (
	TargetTPS = 60
	// MaxFrameTime caps the simulated time of one step, in milliseconds.
	MaxFrameTime = 1000 / TargetTPS
	DefaultSpeed = 0.8
	PaddleSpeed  = 1.0
	BallSpeed    = 0.4
)

// Paddle half-lengths. Difficulty doubles the half-size and wraps past the maximum.
const (
	DefaultPaddleHalfSize = 32
	MinPaddleHalfSize     = 4
	MaxPaddleHalfSize     = 64
)

// Geometry.
const (
	PaddleInset     = 64
	PaddleThickness = 8
	HitZone         = 4
	BallMargin      = 8
	BallLength      = 8
	BorderWidth     = 8
	CenterLineWidth = 2
)

// Score ticks are drawn either side of the centre line.
const (
	ScoreOffset      = 32
	ScoreTickSpacing = 8
	ScoreTickWidth   = 4
	ScoreTop         = 30
	ScoreBottom      = 34
)
