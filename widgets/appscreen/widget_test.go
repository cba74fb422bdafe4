package appscreen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"tv-frame/widgets/appscreen"
)

func TestContentRect(t *testing.T) {
	w := &appscreen.Widget{Header: "设置", CanBack: true}
	bounds := sdl.Rect{X: 0, Y: 0, W: 1920, H: 1080}

	got := w.ContentRect(bounds)
	top := appscreen.TopPadding + appscreen.HeaderHeight + 10

	assert.Equal(t, appscreen.ChildPadding, got.X)
	assert.Equal(t, top, got.Y)
	assert.Equal(t, 1920-2*appscreen.ChildPadding, got.W)
	assert.Equal(t, 1080-top-appscreen.TopPadding, got.H)
}

func TestContentRect_Offset(t *testing.T) {
	w := &appscreen.Widget{}
	got := w.ContentRect(sdl.Rect{X: 100, Y: 40, W: 800, H: 600})

	assert.Equal(t, int32(100)+appscreen.ChildPadding, got.X)
	assert.Equal(t, int32(40)+appscreen.TopPadding+appscreen.HeaderHeight+10, got.Y)
}
