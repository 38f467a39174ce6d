package pong

import "github.com/plus3/pong/input"

// KeyState reports keyboard state for the current frame.
type KeyState interface {
	WasPressed(k input.Key) bool
	IsHeld(k input.Key) bool
}

// Bindings maps keys to game actions. Up and Down are indexed by Side.
type Bindings struct {
	Quit       input.Key
	Serve      input.Key
	Mode       input.Key
	Difficulty input.Key
	Up         [2]input.Key
	Down       [2]input.Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Quit:       input.KeyEscape,
		Serve:      input.KeySpace,
		Mode:       input.KeyP,
		Difficulty: input.KeyO,
		Up:         [2]input.Key{input.KeyW, input.KeyUp},
		Down:       [2]input.Key{input.KeyS, input.KeyDown},
	}
}

// Read turns key state into controls. At most one action is set, in the
// order quit, serve, mode, difficulty.
func (b Bindings) Read(keys KeyState) Controls {
	var c Controls
	switch {
	case keys.WasPressed(b.Quit):
		c.Quit = true
	case keys.WasPressed(b.Serve):
		c.Serve = true
	case keys.WasPressed(b.Mode):
		c.ToggleMode = true
	case keys.WasPressed(b.Difficulty):
		c.CycleDifficulty = true
	}

	for _, side := range []Side{Left, Right} {
		up, down := keys.IsHeld(b.Up[side]), keys.IsHeld(b.Down[side])
		switch {
		case up == down:
			c.Move[side] = Stay
		case up:
			c.Move[side] = Up
		default:
			c.Move[side] = Down
		}
	}
	return c
}
