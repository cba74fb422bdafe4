package root

import (
	"tv-frame/pkg/input"
	prefs "tv-frame/pkg/settings"
	"tv-frame/screens/loadTimeout"
	"tv-frame/ui"
	"tv-frame/widgets/settings"

	"github.com/veandco/go-sdl2/sdl"
)

// PlayerHeader is the breadcrumb of the player settings list
const PlayerHeader = "设置 / 播放器"

// Status messages shown on the player settings list
const (
	StatusLoadTimeoutUpdated = "✓ 加载超时已更新"
)

// RootScreen hosts the player settings pages and owns the settings store
type RootScreen struct {
	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer
	fonts    *ui.Fonts

	// Externally visible player settings; pages read and write through it
	store *prefs.Store

	// Pages
	currentMenu       settings.MenuType
	playerWidget      *settings.Widget
	loadTimeoutScreen *loadTimeout.Screen

	// Input tracking
	controller *input.Controller

	// Set when the user backs out of the top-level page
	done bool
}
