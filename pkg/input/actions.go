package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a remote-control style intent derived from raw key and mouse state
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionSelect
	ActionBack
)

// String returns the action name for logging
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	default:
		return "none"
	}
}

// Keys bound to each action. Several keys per action cover keyboards,
// TV remotes exposed as HID devices and CEC bridges.
var (
	selectKeys = []sdl.Scancode{sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER, sdl.SCANCODE_SPACE}
	backKeys   = []sdl.Scancode{sdl.SCANCODE_ESCAPE, sdl.SCANCODE_BACKSPACE, sdl.SCANCODE_AC_BACK}
	moveKeys   = []struct {
		scancode sdl.Scancode
		action   Action
	}{
		{sdl.SCANCODE_UP, ActionUp},
		{sdl.SCANCODE_DOWN, ActionDown},
		{sdl.SCANCODE_LEFT, ActionLeft},
		{sdl.SCANCODE_RIGHT, ActionRight},
	}
)

// Controller turns per-frame keyboard and mouse state into edge-triggered actions
type Controller struct {
	keyTracker   KeyPressTracker
	mouseTracker MousePressTracker
}

// NewController creates a new Controller
func NewController() *Controller {
	return &Controller{
		keyTracker:   NewKeyPressTracker(),
		mouseTracker: NewMousePressTracker(),
	}
}

// Actions returns the actions triggered since the previous call, in a fixed
// order: movement, then select, then back. Held keys do not repeat.
func (c *Controller) Actions(keyState []uint8, mouseButtons uint32) []Action {
	var actions []Action

	for _, mk := range moveKeys {
		if c.keyTracker.IsPressed(keyState, mk.scancode) {
			actions = append(actions, mk.action)
		}
	}

	// Every tracker must be polled each frame so its state stays current,
	// so no short-circuiting here.
	selected := false
	for _, sc := range selectKeys {
		if c.keyTracker.IsPressed(keyState, sc) {
			selected = true
		}
	}
	if c.mouseTracker.IsPressed(mouseButtons, sdl.ButtonLMask()) {
		selected = true
	}
	if c.mouseTracker.IsPressed(mouseButtons, sdl.ButtonRMask()) {
		selected = true
	}
	if selected {
		actions = append(actions, ActionSelect)
	}

	back := false
	for _, sc := range backKeys {
		if c.keyTracker.IsPressed(keyState, sc) {
			back = true
		}
	}
	if back {
		actions = append(actions, ActionBack)
	}

	return actions
}
