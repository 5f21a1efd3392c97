package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-launchvol/grid"
	"go-launchvol/theme"
)

// PadWidth is how many terminal cells one pad takes (symbol + gap)
const PadWidth = 2

// GridHeight is the number of rendered lines: top row plus 8 grid rows
const GridHeight = grid.Size + 1

// RenderPad renders a single colored pad
func RenderPad(th *theme.Theme, color grid.Color) string {
	sym := th.Symbols.Pad
	if color == grid.Off {
		sym = th.Symbols.PadOff
	}
	style := lipgloss.NewStyle().Foreground(th.Pad(color))
	return style.Render(string(sym))
}

// RenderGrid renders the whole controller as the hardware lays it out: the
// top row of round buttons, then the 8x8 grid with the side column on the
// right. Pads missing from colors render as off.
func RenderGrid(th *theme.Theme, colors map[grid.Pad]grid.Color) string {
	lines := make([]string, 0, GridHeight)
	for y := 0; y <= grid.Size; y++ {
		var line strings.Builder
		for x := 0; x <= grid.Size; x++ {
			if x > 0 {
				line.WriteString(" ")
			}
			pad, ok := grid.PadAt(grid.Coord{X: x, Y: y})
			if !ok {
				line.WriteRune(th.Symbols.Missing)
				continue
			}
			line.WriteString(RenderPad(th, colors[pad]))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// HitTest maps a cell inside a rendered grid (relative to its top-left
// corner) to the pad drawn there
func HitTest(x, y int) (grid.Pad, bool) {
	if x < 0 || y < 0 {
		return grid.Pad{}, false
	}
	return grid.PadAt(grid.Coord{X: x / PadWidth, Y: y})
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(th *theme.Theme, color grid.Color, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderPad(th, color), name, desc)
}
