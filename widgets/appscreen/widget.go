// Package appscreen draws the chrome shared by full-screen settings pages:
// background, breadcrumb header and back hint.
package appscreen

import (
	"tv-frame/ui"

	"github.com/veandco/go-sdl2/sdl"
)

// Layout constants
const (
	TopPadding   = int32(10)
	HeaderHeight = int32(56)
	ChildPadding = int32(58) // horizontal inset of page content
	BackHint     = "ESC 返回"
)

// Widget is the frame around a settings page
type Widget struct {
	Header  string
	CanBack bool
}

// ContentRect returns the area left for page content inside bounds
func (w *Widget) ContentRect(bounds sdl.Rect) sdl.Rect {
	top := TopPadding + HeaderHeight + 10
	return sdl.Rect{
		X: bounds.X + ChildPadding,
		Y: bounds.Y + top,
		W: bounds.W - 2*ChildPadding,
		H: bounds.H - top - TopPadding,
	}
}

// Draw renders the chrome into bounds and returns the content rectangle
func (w *Widget) Draw(renderer *sdl.Renderer, bounds sdl.Rect, fonts *ui.Fonts) (sdl.Rect, error) {
	ui.DrawGradientRect(renderer, bounds, ui.ColorBackground, ui.ColorBackgroundEnd)

	if fonts != nil && fonts.Large != nil && w.Header != "" {
		if err := ui.RenderText(renderer, w.Header, bounds.X+ChildPadding, bounds.Y+TopPadding+10, ui.ColorOnSurface, fonts.Large); err != nil {
			return sdl.Rect{}, err
		}
	}

	if w.CanBack && fonts != nil && fonts.Small != nil {
		if tw, _, err := ui.TextSize(BackHint, fonts.Small); err == nil {
			ui.RenderText(renderer, BackHint, bounds.X+bounds.W-ChildPadding-tw, bounds.Y+TopPadding+20, ui.ColorMuted, fonts.Small)
		}
	}

	return w.ContentRect(bounds), nil
}
