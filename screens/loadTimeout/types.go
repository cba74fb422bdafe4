package loadTimeout

import "tv-frame/widgets/settings"

// Header is the breadcrumb shown above the grid
const Header = "设置 / 播放器 / 加载超时"

// Columns is the fixed number of grid columns
const Columns = 6

// optionSeconds are the selectable load timeouts, ascending
var optionSeconds = []int64{1, 2, 3, 4, 5, 10, 15, 20, 25, 30, 45, 60}

// Row is one rendered grid entry
type Row struct {
	Value   int64 // timeout in milliseconds
	Label   string
	Checked bool
}

// Screen lets the user pick the video player load timeout. It never stores
// the timeout itself: the current value is read through timeoutProvider on
// every render pass and changes are reported through onTimeoutChanged.
type Screen struct {
	options []int64

	timeoutProvider  func() int64
	onTimeoutChanged func(int64)
	onBackPressed    func()

	grid *settings.Grid
}

// Option configures a Screen
type Option func(*Screen)

// WithTimeoutProvider sets the accessor for the current timeout (ms)
func WithTimeoutProvider(fn func() int64) Option {
	return func(s *Screen) {
		if fn != nil {
			s.timeoutProvider = fn
		}
	}
}

// WithOnTimeoutChanged sets the callback invoked with a newly chosen timeout (ms)
func WithOnTimeoutChanged(fn func(int64)) Option {
	return func(s *Screen) {
		if fn != nil {
			s.onTimeoutChanged = fn
		}
	}
}

// WithOnBackPressed sets the callback invoked when the user navigates back
func WithOnBackPressed(fn func()) Option {
	return func(s *Screen) {
		if fn != nil {
			s.onBackPressed = fn
		}
	}
}
