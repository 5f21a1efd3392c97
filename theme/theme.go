package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-launchvol/grid"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Pad     rune // ■ lit pad
	PadOff  rune // □ dark pad
	Missing rune // the corner with no pad
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Pad:     '■',
			PadOff:  '□',
			Missing: ' ',
		},
	}
}

// Default is the level palette with the standard symbols
func Default() *Theme {
	return New(Level)
}

var (
	fg     = lipgloss.Color("#d0d0d0")
	muted  = lipgloss.Color("#707070")
	accent = lipgloss.Color("#3fb950")
)

func (t *Theme) FG() lipgloss.Color     { return fg }
func (t *Theme) Muted() lipgloss.Color  { return muted }
func (t *Theme) Accent() lipgloss.Color { return accent }

// Level returns the readout color for a volume in [0,1]
func (t *Theme) Level(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// Pad returns the screen color of a pad color
func (t *Theme) Pad(c grid.Color) lipgloss.Color {
	return rgbToLipgloss(PadRGB(c))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
