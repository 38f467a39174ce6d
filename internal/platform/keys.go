package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pong/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyA: ebiten.KeyA, input.KeyB: ebiten.KeyB, input.KeyC: ebiten.KeyC,
	input.KeyD: ebiten.KeyD, input.KeyE: ebiten.KeyE, input.KeyF: ebiten.KeyF,
	input.KeyG: ebiten.KeyG, input.KeyH: ebiten.KeyH, input.KeyI: ebiten.KeyI,
	input.KeyJ: ebiten.KeyJ, input.KeyK: ebiten.KeyK, input.KeyL: ebiten.KeyL,
	input.KeyM: ebiten.KeyM, input.KeyN: ebiten.KeyN, input.KeyO: ebiten.KeyO,
	input.KeyP: ebiten.KeyP, input.KeyQ: ebiten.KeyQ, input.KeyR: ebiten.KeyR,
	input.KeyS: ebiten.KeyS, input.KeyT: ebiten.KeyT, input.KeyU: ebiten.KeyU,
	input.KeyV: ebiten.KeyV, input.KeyW: ebiten.KeyW, input.KeyX: ebiten.KeyX,
	input.KeyY: ebiten.KeyY, input.KeyZ: ebiten.KeyZ,

	input.Key0: ebiten.KeyDigit0, input.Key1: ebiten.KeyDigit1, input.Key2: ebiten.KeyDigit2,
	input.Key3: ebiten.KeyDigit3, input.Key4: ebiten.KeyDigit4, input.Key5: ebiten.KeyDigit5,
	input.Key6: ebiten.KeyDigit6, input.Key7: ebiten.KeyDigit7, input.Key8: ebiten.KeyDigit8,
	input.Key9: ebiten.KeyDigit9,

	input.KeyUp:    ebiten.KeyArrowUp,
	input.KeyDown:  ebiten.KeyArrowDown,
	input.KeyLeft:  ebiten.KeyArrowLeft,
	input.KeyRight: ebiten.KeyArrowRight,

	input.KeySpace:     ebiten.KeySpace,
	input.KeyEscape:    ebiten.KeyEscape,
	input.KeyEnter:     ebiten.KeyEnter,
	input.KeyTab:       ebiten.KeyTab,
	input.KeyBackspace: ebiten.KeyBackspace,

	input.KeyF1: ebiten.KeyF1, input.KeyF2: ebiten.KeyF2, input.KeyF3: ebiten.KeyF3,
	input.KeyF4: ebiten.KeyF4, input.KeyF5: ebiten.KeyF5, input.KeyF6: ebiten.KeyF6,
	input.KeyF7: ebiten.KeyF7, input.KeyF8: ebiten.KeyF8, input.KeyF9: ebiten.KeyF9,
	input.KeyF10: ebiten.KeyF10, input.KeyF11: ebiten.KeyF11, input.KeyF12: ebiten.KeyF12,
}

// pollKeys feeds this tick's key state into the tracker.
func pollKeys(tracker *input.Tracker) {
	tracker.BeginFrame()
	if !ebiten.IsFocused() {
		tracker.Reset()
		return
	}
	syncKeys(tracker, inpututil.IsKeyJustPressed, ebiten.IsKeyPressed)
}

// syncKeys takes presses from the edge detector and held state from the key
// level, so a key that is already down when focus returns still counts as held.
func syncKeys(tracker *input.Tracker, justPressed, pressed func(ebiten.Key) bool) {
	for k, ek := range ebitenKeys {
		if justPressed(ek) {
			tracker.KeyDown(k)
		}
		tracker.SetHeld(k, pressed(ek))
	}
}
