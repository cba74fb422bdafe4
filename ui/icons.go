package ui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// DrawCheckCircle draws a filled circle of radius r centred on (cx, cy) with
// a check mark knocked out in the background colour.
func DrawCheckCircle(renderer *sdl.Renderer, cx, cy, r int32, color, mark sdl.Color) {
	if r <= 0 {
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for dy := -r; dy <= r; dy++ {
		dx := int32(math.Sqrt(float64(r*r - dy*dy)))
		renderer.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}

	// Check mark: short stroke down-right, long stroke up-right
	fr := float64(r)
	x1, y1 := cx-int32(fr*0.45), cy
	x2, y2 := cx-int32(fr*0.12), cy+int32(fr*0.35)
	x3, y3 := cx+int32(fr*0.48), cy-int32(fr*0.3)

	thickness := r / 6
	if thickness < 1 {
		thickness = 1
	}

	renderer.SetDrawColor(mark.R, mark.G, mark.B, mark.A)
	for t := -thickness / 2; t <= thickness/2; t++ {
		renderer.DrawLine(x1, y1+t, x2, y2+t)
		renderer.DrawLine(x2, y2+t, x3, y3+t)
	}
}
