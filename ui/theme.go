package ui

import "github.com/veandco/go-sdl2/sdl"

// Palette used by every screen
var (
	ColorBackground    = sdl.Color{R: 15, G: 23, B: 42, A: 255}
	ColorBackgroundEnd = sdl.Color{R: 30, G: 41, B: 59, A: 255}
	ColorSurface       = sdl.Color{R: 51, G: 65, B: 85, A: 255}
	ColorOnSurface     = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorPrimary       = sdl.Color{R: 59, G: 130, B: 246, A: 255}
	ColorMuted         = sdl.Color{R: 148, G: 163, B: 184, A: 255}
	ColorSuccess       = sdl.Color{R: 34, G: 197, B: 94, A: 255}
)

// WithAlpha returns c with its alpha scaled to alpha (0..1)
func WithAlpha(c sdl.Color, alpha float64) sdl.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

// FillRect fills rect with color using alpha blending
func FillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}
