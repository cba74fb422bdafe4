package root

import (
	"log"

	"tv-frame/pkg/humanize"
	"tv-frame/pkg/input"
	"tv-frame/pkg/logging"
	prefs "tv-frame/pkg/settings"
	"tv-frame/screens/loadTimeout"
	"tv-frame/ui"
	"tv-frame/widgets/appscreen"
	"tv-frame/widgets/settings"

	"github.com/veandco/go-sdl2/sdl"
)

// NewRootScreen creates and initializes the root screen
func NewRootScreen(window *sdl.Window, renderer *sdl.Renderer, store *prefs.Store) *RootScreen {
	rs := newRootScreen(store)
	rs.window = window
	rs.renderer = renderer

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Printf("Warning: Failed to initialize fonts: %v", err)
	}
	rs.fonts = fonts

	return rs
}

// newRootScreen wires the pages without touching SDL
func newRootScreen(store *prefs.Store) *RootScreen {
	rs := &RootScreen{
		store:        store,
		currentMenu:  settings.PlayerMenu,
		playerWidget: settings.NewWidget(),
		controller:   input.NewController(),
	}

	rs.loadTimeoutScreen = loadTimeout.NewScreen(
		loadTimeout.WithTimeoutProvider(store.LoadTimeout),
		loadTimeout.WithOnTimeoutChanged(rs.handleLoadTimeoutChanged),
		loadTimeout.WithOnBackPressed(rs.showPlayerMenu),
	)

	rs.playerWidget.SetItems(settings.BuildPlayerMenuItems(store.LoadTimeout()))
	return rs
}

// Update handles SDL2 input and updates screen state
func (rs *RootScreen) Update() error {
	keyState := sdl.GetKeyboardState()
	_, _, buttons := sdl.GetMouseState()

	rs.handleActions(rs.controller.Actions(keyState, buttons))
	return nil
}

// handleActions dispatches actions to the active page
func (rs *RootScreen) handleActions(actions []input.Action) {
	for _, action := range actions {
		logging.Debugf("action %s on %s", action, rs.currentMenu)

		switch rs.currentMenu {
		case settings.PlayerMenu:
			rs.handlePlayerMenuAction(action)
		case settings.LoadTimeoutMenu:
			rs.loadTimeoutScreen.HandleAction(action)
		}
	}
}

// handlePlayerMenuAction handles the player settings list
func (rs *RootScreen) handlePlayerMenuAction(action input.Action) {
	switch action {
	case input.ActionUp:
		rs.playerWidget.MoveSelection(-1)
	case input.ActionDown:
		rs.playerWidget.MoveSelection(1)
	case input.ActionSelect:
		if rs.playerWidget.SelectedItem().Title == settings.LoadTimeoutTitle {
			rs.showLoadTimeoutMenu()
		}
	case input.ActionBack:
		log.Println("Leaving settings")
		rs.done = true
	}
}

// showLoadTimeoutMenu opens the load timeout grid focused on the current value
func (rs *RootScreen) showLoadTimeoutMenu() {
	rs.playerWidget.ClearStatusMessage()
	rs.loadTimeoutScreen.FocusCurrent()
	rs.currentMenu = settings.LoadTimeoutMenu
}

// showPlayerMenu returns to the player settings list
func (rs *RootScreen) showPlayerMenu() {
	rs.playerWidget.SetItems(settings.BuildPlayerMenuItems(rs.store.LoadTimeout()))
	rs.currentMenu = settings.PlayerMenu
}

// handleLoadTimeoutChanged applies a timeout chosen on the grid
func (rs *RootScreen) handleLoadTimeoutChanged(ms int64) {
	rs.store.SetLoadTimeout(ms)
	log.Printf("Video player load timeout set to %s (%dms)", humanize.Ms(ms), ms)

	rs.playerWidget.SetItems(settings.BuildPlayerMenuItems(ms))
	rs.playerWidget.SetStatusMessage(StatusLoadTimeoutUpdated)
}

// CurrentMenu returns the active page
func (rs *RootScreen) CurrentMenu() settings.MenuType {
	return rs.currentMenu
}

// Done reports whether the user asked to leave the settings
func (rs *RootScreen) Done() bool {
	return rs.done
}

// Draw renders the complete frame using SDL2
func (rs *RootScreen) Draw() error {
	w, h := rs.window.GetSize()

	rs.renderer.SetDrawColor(0, 0, 0, 255)
	rs.renderer.Clear()

	switch rs.currentMenu {
	case settings.LoadTimeoutMenu:
		if err := rs.loadTimeoutScreen.Draw(rs.renderer, w, h, rs.fonts); err != nil {
			return err
		}
	default:
		if err := rs.drawPlayerMenu(w, h); err != nil {
			return err
		}
	}

	rs.renderer.Present()
	return nil
}

// drawPlayerMenu renders the player settings list
func (rs *RootScreen) drawPlayerMenu(w, h int32) error {
	chrome := appscreen.Widget{Header: PlayerHeader, CanBack: true}

	content, err := chrome.Draw(rs.renderer, sdl.Rect{X: 0, Y: 0, W: w, H: h}, rs.fonts)
	if err != nil {
		return err
	}
	if rs.fonts == nil {
		return nil
	}

	return rs.playerWidget.Draw(rs.renderer, content, rs.fonts)
}

// Close cleans up resources
func (rs *RootScreen) Close() {
	if rs.fonts != nil {
		rs.fonts.Close()
	}
}
