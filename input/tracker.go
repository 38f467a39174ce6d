package input

// Tracker records which keys went down during the current frame and which
// are being held. Call BeginFrame before feeding the frame's key events.
type Tracker struct {
	pressed [keyCount]bool
	held    [keyCount]bool
}

// BeginFrame forgets the keys pressed during the previous frame.
func (t *Tracker) BeginFrame() {
	t.pressed = [keyCount]bool{}
}

// KeyDown records a key press. Repeats from the OS should not be fed here.
func (t *Tracker) KeyDown(k Key) {
	if !k.Valid() {
		return
	}
	t.pressed[k] = true
	t.held[k] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(k Key) {
	if !k.Valid() {
		return
	}
	t.held[k] = false
}

// SetHeld records the current level of k without marking a press, for
// sources that report key state rather than transitions.
func (t *Tracker) SetHeld(k Key, held bool) {
	if !k.Valid() {
		return
	}
	t.held[k] = held
}

// WasPressed reports whether k went down this frame.
func (t *Tracker) WasPressed(k Key) bool {
	return k.Valid() && t.pressed[k]
}

// IsHeld reports whether k is currently down.
func (t *Tracker) IsHeld(k Key) bool {
	return k.Valid() && t.held[k]
}

// Reset releases every key, e.g. after the window loses focus.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
