package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes, tuned for a 1080p TV viewed from the couch
const (
	LargeFontSize  = 32
	MediumFontSize = 24
	SmallFontSize  = 18
)

// Settings labels are Chinese, so CJK-capable faces come first. The Latin
// faces keep the frame usable on images without CJK fonts installed.
var fontPaths = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
}

// Fonts manages a set of TrueType fonts at different sizes
type Fonts struct {
	Large  *ttf.Font // screen headers
	Medium *ttf.Font // list and grid labels
	Small  *ttf.Font // hints and values
}

// LoadFonts loads the first available system font at each size. Missing
// sizes are left nil and callers skip text drawn with them.
func LoadFonts() (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %w", err)
	}

	fonts := &Fonts{
		Large:  openFirst(fontPaths, LargeFontSize),
		Medium: openFirst(fontPaths, MediumFontSize),
		Small:  openFirst(fontPaths, SmallFontSize),
	}
	if fonts.Large == nil && fonts.Medium == nil && fonts.Small == nil {
		return fonts, fmt.Errorf("no usable font found in %d candidate paths", len(fontPaths))
	}

	return fonts, nil
}

func openFirst(paths []string, size int) *ttf.Font {
	for _, path := range paths {
		if font, err := ttf.OpenFont(path, size); err == nil {
			return font
		}
	}
	return nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	for _, font := range []*ttf.Font{f.Large, f.Medium, f.Small} {
		if font != nil {
			font.Close()
		}
	}
}
