package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"tv-frame/pkg/input"
)

func keyState(pressed ...sdl.Scancode) []uint8 {
	state := make([]uint8, sdl.NUM_SCANCODES)
	for _, sc := range pressed {
		state[sc] = 1
	}
	return state
}

func TestKeyPressTracker_EdgeTriggered(t *testing.T) {
	kpt := input.NewKeyPressTracker()

	assert.True(t, kpt.IsPressed(keyState(sdl.SCANCODE_RETURN), sdl.SCANCODE_RETURN))
	assert.False(t, kpt.IsPressed(keyState(sdl.SCANCODE_RETURN), sdl.SCANCODE_RETURN), "held key must not repeat")
	assert.False(t, kpt.IsPressed(keyState(), sdl.SCANCODE_RETURN))
	assert.True(t, kpt.IsPressed(keyState(sdl.SCANCODE_RETURN), sdl.SCANCODE_RETURN))
}

func TestKeyPressTracker_ShortState(t *testing.T) {
	kpt := input.NewKeyPressTracker()
	assert.False(t, kpt.IsPressed(nil, sdl.SCANCODE_RETURN))
}

func TestMousePressTracker_EdgeTriggered(t *testing.T) {
	mpt := input.NewMousePressTracker()
	left := sdl.ButtonLMask()

	assert.True(t, mpt.IsPressed(left, left))
	assert.False(t, mpt.IsPressed(left, left))
	assert.False(t, mpt.IsPressed(0, left))
	assert.True(t, mpt.IsPressed(left, left))
}

func TestController_Actions(t *testing.T) {
	c := input.NewController()

	assert.Equal(t, []input.Action{input.ActionRight}, c.Actions(keyState(sdl.SCANCODE_RIGHT), 0))
	assert.Empty(t, c.Actions(keyState(sdl.SCANCODE_RIGHT), 0))
	assert.Equal(t, []input.Action{input.ActionSelect}, c.Actions(keyState(sdl.SCANCODE_RETURN), 0))
	assert.Equal(t, []input.Action{input.ActionBack}, c.Actions(keyState(sdl.SCANCODE_ESCAPE), 0))
}

func TestController_SelectOnceForSeveralKeys(t *testing.T) {
	c := input.NewController()

	actions := c.Actions(keyState(sdl.SCANCODE_RETURN, sdl.SCANCODE_SPACE), sdl.ButtonLMask())
	assert.Equal(t, []input.Action{input.ActionSelect}, actions)
}

func TestController_Order(t *testing.T) {
	c := input.NewController()

	actions := c.Actions(keyState(sdl.SCANCODE_BACKSPACE, sdl.SCANCODE_DOWN, sdl.SCANCODE_KP_ENTER), 0)
	assert.Equal(t, []input.Action{input.ActionDown, input.ActionSelect, input.ActionBack}, actions)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "select", input.ActionSelect.String())
	assert.Equal(t, "none", input.Action(99).String())
}
