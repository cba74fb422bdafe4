package loadTimeout

import (
	"tv-frame/pkg/humanize"
	"tv-frame/pkg/input"
	"tv-frame/pkg/logging"
	"tv-frame/ui"
	"tv-frame/widgets/appscreen"
	"tv-frame/widgets/settings"

	"github.com/veandco/go-sdl2/sdl"
)

// NewScreen creates the load timeout screen. Unset callbacks default to an
// accessor returning 0 and no-op handlers.
func NewScreen(opts ...Option) *Screen {
	options := make([]int64, len(optionSeconds))
	for i, sec := range optionSeconds {
		options[i] = sec * 1000
	}

	s := &Screen{
		options:          options,
		timeoutProvider:  func() int64 { return 0 },
		onTimeoutChanged: func(int64) {},
		onBackPressed:    func() {},
		grid:             settings.NewGrid(Columns),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Labels are static; checked state is refreshed on each render pass
	items := make([]settings.Item, len(options))
	for i, v := range options {
		items[i] = settings.Item{Title: humanize.Ms(v)}
	}
	s.grid.SetItems(items)

	return s
}

// Options returns the selectable timeouts in milliseconds, ascending
func (s *Screen) Options() []int64 {
	out := make([]int64, len(s.options))
	copy(out, s.options)
	return out
}

// Rows performs one render pass over the options. The current timeout is
// read once and compared for exact equality with each option.
func (s *Screen) Rows() []Row {
	items := settings.BuildChoiceItems(s.options, s.timeoutProvider(), humanize.Ms)

	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{Value: s.options[i], Label: item.Title, Checked: item.Checked}
	}
	return rows
}

// Focused returns the index of the focused row
func (s *Screen) Focused() int {
	return s.grid.Focused()
}

// FocusCurrent moves focus to the row matching the current timeout, if any
func (s *Screen) FocusCurrent() {
	current := s.timeoutProvider()
	for i, v := range s.options {
		if v == current {
			s.grid.SetFocused(i)
			return
		}
	}
}

// Select activates the row at index, reporting its value. Out-of-range
// indexes are ignored.
func (s *Screen) Select(index int) {
	if index < 0 || index >= len(s.options) {
		return
	}
	s.onTimeoutChanged(s.options[index])
}

// Back requests navigation away from the screen
func (s *Screen) Back() {
	s.onBackPressed()
}

// HandleAction applies one remote-control action
func (s *Screen) HandleAction(action input.Action) {
	switch action {
	case input.ActionUp:
		s.moveFocus(0, -1)
	case input.ActionDown:
		s.moveFocus(0, 1)
	case input.ActionLeft:
		s.moveFocus(-1, 0)
	case input.ActionRight:
		s.moveFocus(1, 0)
	case input.ActionSelect:
		s.Select(s.grid.Focused())
	case input.ActionBack:
		s.Back()
	}
}

func (s *Screen) moveFocus(dx, dy int) {
	if s.grid.Move(dx, dy) {
		logging.Debugf("load timeout focus -> %d", s.grid.Focused())
	}
}

// Draw renders the screen into a width x height area
func (s *Screen) Draw(renderer *sdl.Renderer, width, height int32, fonts *ui.Fonts) error {
	chrome := appscreen.Widget{Header: Header, CanBack: true}

	content, err := chrome.Draw(renderer, sdl.Rect{X: 0, Y: 0, W: width, H: height}, fonts)
	if err != nil {
		return err
	}

	rows := s.Rows()
	items := make([]settings.Item, len(rows))
	for i, row := range rows {
		items[i] = settings.Item{Title: row.Label, Checked: row.Checked}
	}
	s.grid.SetItems(items)

	if fonts == nil {
		return s.grid.Draw(renderer, content, nil)
	}
	return s.grid.Draw(renderer, content, fonts.Medium)
}
