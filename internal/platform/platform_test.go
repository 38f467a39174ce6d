package platform

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/input"
	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
)

func TestEbitenKeys(t *testing.T) {
	seen := make(map[ebiten.Key]input.Key)
	for _, k := range input.Keys() {
		ek, ok := ebitenKeys[k]
		if !assert.True(t, ok, "%s has no ebiten key", k) {
			continue
		}
		if other, dup := seen[ek]; dup {
			t.Errorf("%s and %s map to the same ebiten key", k, other)
		}
		seen[ek] = k
	}
	assert.Len(t, ebitenKeys, len(input.Keys()))
}

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestSyncKeys(t *testing.T) {
	var tracker input.Tracker

	// W is already down when the window regains focus, so no press edge arrives.
	tracker.Reset()
	tracker.BeginFrame()
	syncKeys(&tracker, keySet(), keySet(ebiten.KeyW))
	assert.True(t, tracker.IsHeld(input.KeyW))
	assert.False(t, tracker.WasPressed(input.KeyW))
	assert.False(t, tracker.IsHeld(input.KeyS))

	tracker.BeginFrame()
	syncKeys(&tracker, keySet(ebiten.KeySpace), keySet(ebiten.KeyW, ebiten.KeySpace))
	assert.True(t, tracker.WasPressed(input.KeySpace))
	assert.True(t, tracker.IsHeld(input.KeySpace))
	assert.True(t, tracker.IsHeld(input.KeyW))

	// A release that happened while unfocused is picked up from the level.
	tracker.BeginFrame()
	syncKeys(&tracker, keySet(), keySet())
	assert.False(t, tracker.IsHeld(input.KeyW))
	assert.False(t, tracker.IsHeld(input.KeySpace))
	assert.False(t, tracker.WasPressed(input.KeySpace))
}

func TestStatusOrigin(t *testing.T) {
	x, y := statusOrigin("abcd")
	assert.Equal(t, (pong.ScreenWidth-28)/2, x)
	assert.Equal(t, pong.ScreenHeight-24, y)

	long := make([]byte, 200)
	x, _ = statusOrigin(string(long))
	assert.Zero(t, x)
}
