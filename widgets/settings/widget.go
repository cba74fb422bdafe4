package settings

import (
	"tv-frame/ui"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	listItemHeight = int32(60)
	checkRadius    = int32(12)
)

// Widget manages a vertical settings list and its selection
type Widget struct {
	items         []Item
	selected      int
	statusMessage string
}

// NewWidget creates a new settings widget
func NewWidget() *Widget {
	return &Widget{}
}

// SetItems updates the settings items
func (w *Widget) SetItems(items []Item) {
	w.items = items
	if w.selected >= len(items) {
		w.selected = 0
	}
}

// Items returns the current items
func (w *Widget) Items() []Item {
	return w.items
}

// Selected returns the selected item index
func (w *Widget) Selected() int {
	return w.selected
}

// SelectedItem returns the selected item
func (w *Widget) SelectedItem() Item {
	if w.selected >= 0 && w.selected < len(w.items) {
		return w.items[w.selected]
	}
	return Item{}
}

// SetStatusMessage sets a status message to display above the list
func (w *Widget) SetStatusMessage(message string) {
	w.statusMessage = message
}

// StatusMessage returns the status message, if any
func (w *Widget) StatusMessage() string {
	return w.statusMessage
}

// ClearStatusMessage clears the status message
func (w *Widget) ClearStatusMessage() {
	w.statusMessage = ""
}

// MoveSelection moves selection up or down with wrapping
func (w *Widget) MoveSelection(delta int) {
	if len(w.items) == 0 {
		return
	}

	w.selected += delta
	if w.selected < 0 {
		w.selected = len(w.items) - 1
	} else if w.selected >= len(w.items) {
		w.selected = 0
	}
}

// Draw renders the list inside area
func (w *Widget) Draw(renderer *sdl.Renderer, area sdl.Rect, fonts *ui.Fonts) error {
	itemsStartY := area.Y
	if w.statusMessage != "" && fonts.Small != nil {
		ui.RenderText(renderer, w.statusMessage, area.X, area.Y, ui.ColorSuccess, fonts.Small)
		itemsStartY += 30
	}

	for i, item := range w.items {
		itemY := itemsStartY + int32(i)*(listItemHeight+10)

		// Skip if item would be below visible area
		if itemY+listItemHeight > area.Y+area.H {
			break
		}

		row := sdl.Rect{X: area.X, Y: itemY, W: area.W, H: listItemHeight}
		if i == w.selected {
			ui.FillRect(renderer, row, ui.ColorPrimary)
		} else {
			ui.FillRect(renderer, row, ui.WithAlpha(ui.ColorOnSurface, 0.1))
		}

		if fonts.Medium != nil {
			ui.RenderText(renderer, item.Title, row.X+20, row.Y+16, ui.ColorOnSurface, fonts.Medium)
		}

		// Value is right-aligned, leaving room for the check icon
		right := row.X + row.W - 20
		if item.Checked {
			ui.DrawCheckCircle(renderer, right-checkRadius, row.Y+row.H/2, checkRadius, ui.ColorOnSurface, ui.ColorBackground)
			right -= 2*checkRadius + 12
		}
		if item.Value != "" && fonts.Small != nil {
			if tw, th, err := ui.TextSize(item.Value, fonts.Small); err == nil {
				ui.RenderText(renderer, item.Value, right-tw, row.Y+(row.H-th)/2, ui.ColorMuted, fonts.Small)
			}
		}
	}

	return nil
}
