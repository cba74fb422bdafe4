package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text at the specified position with the given font and color
func RenderText(renderer *sdl.Renderer, text string, x, y int32, color sdl.Color, font *ttf.Font) error {
	if font == nil {
		return fmt.Errorf("font not available")
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	dstRect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &dstRect)
}

// TextSize returns the rendered size of text in font
func TextSize(text string, font *ttf.Font) (int32, int32, error) {
	if font == nil {
		return 0, 0, fmt.Errorf("font not available")
	}

	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0, err
	}
	return int32(w), int32(h), nil
}

// RenderTextCentered renders text centred inside rect
func RenderTextCentered(renderer *sdl.Renderer, text string, rect sdl.Rect, color sdl.Color, font *ttf.Font) error {
	w, h, err := TextSize(text, font)
	if err != nil {
		return err
	}

	return RenderText(renderer, text, rect.X+(rect.W-w)/2, rect.Y+(rect.H-h)/2, color, font)
}
