package layout

import (
	"math"

	"go-launchvol/grid"
)

// BarEpsilon is how close a pad's position must be to the value to be
// drawn as the marker
const BarEpsilon = 0.01

// BarPads is the number of grid pads the bar spans
const BarPads = grid.Size * grid.Size

// BarStyle picks the colors of a progress bar
type BarStyle struct {
	Empty  grid.Color
	Filled grid.Color
	Marker grid.Color
}

// DefaultBarStyle is green fill with a yellow marker
var DefaultBarStyle = BarStyle{Empty: grid.Off, Filled: grid.Green, Marker: grid.Yellow}

// BarColor returns the color of pad index (0..n-1) for value in [0,1].
// Position index/(n-1) within BarEpsilon of value is the marker; at or
// below value is filled; above is empty.
func (s BarStyle) BarColor(index, n int, value float64) grid.Color {
	if n < 2 {
		if value > 0 {
			return s.Filled
		}
		return s.Empty
	}
	pos := float64(index) / float64(n-1)
	switch {
	case math.Abs(pos-value) < BarEpsilon:
		return s.Marker
	case pos <= value:
		return s.Filled
	default:
		return s.Empty
	}
}

// DrawBar renders value across the 64 grid pads, row-major from the top left
func DrawBar(c Canvas, value float64, s BarStyle) {
	for y := uint8(0); y < grid.Size; y++ {
		for x := uint8(0); x < grid.Size; x++ {
			p := grid.Grid(x, y)
			c.Set(p, s.BarColor(p.Index(), BarPads, value))
		}
	}
}

// PadValue is the value a grid pad stands for: index/63
func PadValue(p grid.Pad) float64 {
	return float64(p.Index()) / float64(BarPads-1)
}

// Clamp limits v to [0,1]
func Clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
