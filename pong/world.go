package pong

import (
	"github.com/plus3/pong/ecs"
)

// Options configure a new World.
type Options struct {
	// Speed scales simulated time.
	Speed float64
	// MaxFrameTime caps one step, in milliseconds.
	MaxFrameTime float64
	HalfSize     float64
	TwoPlayer    bool
}

// DefaultOptions match the classic game: two players, 32 px half-paddles.
func DefaultOptions() Options {
	return Options{
		Speed:        DefaultSpeed,
		MaxFrameTime: MaxFrameTime,
		HalfSize:     DefaultPaddleHalfSize,
		TwoPlayer:    true,
	}
}

// World owns the storage and the scheduler that runs the game systems.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	match    *ecs.Singleton[Match]
	controls *ecs.Singleton[Controls]
	events   *ecs.Singleton[Events]
	scene    *ecs.Singleton[Scene]
	paddles  *ecs.View[struct{ *Paddle }]
	balls    *ecs.View[struct{ *Ball }]
}

// NewWorld builds a world in the paused state with both paddles centred.
// registrars can register extra component types for systems added later.
func NewWorld(opts Options, registrars ...func(*ecs.ComponentRegistry)) *World {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Paddle](registry)
	ecs.RegisterComponent[Ball](registry)
	for _, register := range registrars {
		register(registry)
	}

	storage := ecs.NewStorage(registry)
	w := &World{
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
		match: ecs.NewSingleton(storage, Match{
			TwoPlayer: opts.TwoPlayer,
			HalfSize:  opts.HalfSize,
		}),
		controls: ecs.NewSingleton[Controls](storage),
		events:   ecs.NewSingleton[Events](storage),
		scene:    ecs.NewSingleton[Scene](storage),
		paddles:  ecs.NewView[struct{ *Paddle }](storage),
		balls:    ecs.NewView[struct{ *Ball }](storage),
	}
	ecs.NewSingleton(storage, Tuning{Speed: opts.Speed, MaxFrameTime: opts.MaxFrameTime})

	storage.Spawn(Paddle{Side: Left, Y: ScreenHeight / 2})
	storage.Spawn(Paddle{Side: Right, Y: ScreenHeight / 2})

	w.Scheduler.Register(&ClearEventsSystem{})
	w.Scheduler.Register(&ControlSystem{})
	w.Scheduler.Register(&PaddleSystem{})
	w.Scheduler.Register(&BallSystem{})
	w.Scheduler.Register(&SceneSystem{})
	return w
}

// Register appends a system after the game systems.
func (w *World) Register(system ecs.System) {
	w.Scheduler.Register(system)
}

// Step applies controls and advances the simulation by dt seconds. The
// returned events are valid until the next call.
func (w *World) Step(controls Controls, dt float64) []Event {
	*w.controls.Get() = controls
	w.Scheduler.Once(dt)
	return w.events.Get().Items
}

// Match returns a copy of the match state.
func (w *World) Match() Match {
	return *w.match.Get()
}

// Paddle returns a copy of the paddle on the given side.
func (w *World) Paddle(side Side) Paddle {
	for item := range w.paddles.Values() {
		if item.Paddle.Side == side {
			return *item.Paddle
		}
	}
	return Paddle{Side: side}
}

// Ball returns the ball if a rally is in play.
func (w *World) Ball() (Ball, bool) {
	for item := range w.balls.Values() {
		return *item.Ball, true
	}
	return Ball{}, false
}

// Events returns the events raised by the last step.
func (w *World) Events() []Event {
	return w.events.Get().Items
}

// Scene returns the draw list built by the last step.
func (w *World) Scene() *Scene {
	return w.scene.Get()
}
