package ui

import "github.com/veandco/go-sdl2/sdl"

// DrawGradientRect draws a vertical gradient from start (top) to end (bottom)
func DrawGradientRect(renderer *sdl.Renderer, rect sdl.Rect, start, end sdl.Color) {
	if rect.H <= 0 || rect.W <= 0 {
		return
	}

	for i := int32(0); i < rect.H; i++ {
		t := 0.0
		if rect.H > 1 {
			t = float64(i) / float64(rect.H-1)
		}

		renderer.SetDrawColor(lerp(start.R, end.R, t), lerp(start.G, end.G, t), lerp(start.B, end.B, t), lerp(start.A, end.A, t))
		renderer.DrawLine(rect.X, rect.Y+i, rect.X+rect.W-1, rect.Y+i)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
