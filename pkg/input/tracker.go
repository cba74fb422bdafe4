// Package input turns polled SDL keyboard and mouse state into discrete
// remote-control actions.
package input

import "github.com/veandco/go-sdl2/sdl"

// edges remembers the last level of each signal so only rising edges fire
type edges[K comparable] map[K]bool

func (e edges[K]) rise(key K, down bool) bool {
	was := e[key]
	e[key] = down
	return down && !was
}

// KeyPressTracker reports a key once per press, not while it is held
type KeyPressTracker struct {
	pressed edges[sdl.Scancode]
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{pressed: make(edges[sdl.Scancode])}
}

// IsPressed checks if a key was just pressed (not held). A keyState too
// short to hold the scancode counts as released.
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, scancode sdl.Scancode) bool {
	down := int(scancode) < len(keyState) && keyState[scancode] != 0
	return kpt.pressed.rise(scancode, down)
}

// MousePressTracker is KeyPressTracker for mouse buttons, keyed by SDL
// button mask (e.g. sdl.ButtonLMask())
type MousePressTracker struct {
	pressed edges[uint32]
}

// NewMousePressTracker creates a new MousePressTracker
func NewMousePressTracker() MousePressTracker {
	return MousePressTracker{pressed: make(edges[uint32])}
}

// IsPressed checks if a mouse button was just pressed (not held)
func (mpt *MousePressTracker) IsPressed(mouseState uint32, buttonMask uint32) bool {
	return mpt.pressed.rise(buttonMask, mouseState&buttonMask != 0)
}
