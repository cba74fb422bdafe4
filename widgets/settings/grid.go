package settings

import (
	"tv-frame/ui"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Grid defaults matching the TV settings layout
const (
	DefaultGridColumns  = 6
	DefaultGridHSpacing = int32(12)
	DefaultGridVSpacing = int32(10)
	DefaultGridCellH    = int32(64)
)

// Grid lays items out in a fixed number of columns and tracks D-pad focus.
// Focus stops at the edges instead of wrapping.
type Grid struct {
	Columns    int
	HSpacing   int32
	VSpacing   int32
	CellHeight int32

	items   []Item
	focused int
}

// NewGrid creates a grid with the given column count and default spacing
func NewGrid(columns int) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{
		Columns:    columns,
		HSpacing:   DefaultGridHSpacing,
		VSpacing:   DefaultGridVSpacing,
		CellHeight: DefaultGridCellH,
	}
}

// SetItems replaces the items, keeping focus in range
func (g *Grid) SetItems(items []Item) {
	g.items = items
	if g.focused >= len(items) {
		g.focused = 0
	}
}

// Items returns the current items
func (g *Grid) Items() []Item {
	return g.items
}

// Focused returns the focused item index
func (g *Grid) Focused() int {
	return g.focused
}

// SetFocused moves focus to index when it is in range
func (g *Grid) SetFocused(index int) {
	if index >= 0 && index < len(g.items) {
		g.focused = index
	}
}

// Move shifts focus by dx columns and dy rows. A move past the first/last
// column or row is ignored; moving down into a short last row lands on the
// last item. Reports whether focus changed.
func (g *Grid) Move(dx, dy int) bool {
	if len(g.items) == 0 {
		return false
	}

	row, col := g.focused/g.Columns, g.focused%g.Columns
	lastRow := (len(g.items) - 1) / g.Columns

	col += dx
	row += dy
	if col < 0 || col >= g.Columns || row < 0 || row > lastRow {
		return false
	}

	next := row*g.Columns + col
	if next >= len(g.items) {
		if dx != 0 {
			return false
		}
		next = len(g.items) - 1
	}

	changed := next != g.focused
	g.focused = next
	return changed
}

// CellRect returns the rectangle of the cell at index inside area
func (g *Grid) CellRect(area sdl.Rect, index int) sdl.Rect {
	cols := int32(g.Columns)
	cellW := (area.W - g.HSpacing*(cols-1)) / cols
	row, col := int32(index/g.Columns), int32(index%g.Columns)

	return sdl.Rect{
		X: area.X + col*(cellW+g.HSpacing),
		Y: area.Y + row*(g.CellHeight+g.VSpacing),
		W: cellW,
		H: g.CellHeight,
	}
}

// Draw renders every cell that fits in area: a translucent container, the
// centred title and a trailing check icon on the checked item.
func (g *Grid) Draw(renderer *sdl.Renderer, area sdl.Rect, font *ttf.Font) error {
	for i, item := range g.items {
		cell := g.CellRect(area, i)
		if cell.Y+cell.H > area.Y+area.H {
			break
		}

		fg, bg := ui.ColorOnSurface, ui.WithAlpha(ui.ColorOnSurface, 0.1)
		if i == g.focused {
			fg, bg = ui.ColorBackground, ui.ColorOnSurface
		}
		ui.FillRect(renderer, cell, bg)

		label := cell
		if item.Checked {
			r := cell.H / 5
			label.W -= 2*r + 16
			ui.DrawCheckCircle(renderer, cell.X+cell.W-r-12, cell.Y+cell.H/2, r, fg, bg)
		}

		if font != nil {
			if err := ui.RenderTextCentered(renderer, item.Title, label, fg, font); err != nil {
				return err
			}
		}
	}

	return nil
}
