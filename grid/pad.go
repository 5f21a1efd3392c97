package grid

import "fmt"

// Size is the width and height of the pad grid
const Size = 8

// Kind identifies which region of the controller a pad belongs to
type Kind uint8

const (
	KindTop Kind = iota
	KindSide
	KindGrid
)

func (k Kind) String() string {
	switch k {
	case KindTop:
		return "top"
	case KindSide:
		return "side"
	case KindGrid:
		return "grid"
	}
	return "unknown"
}

// Pad is the logical identity of one light on the controller.
// Top pads use X, side pads use Y, grid pads use both.
// Comparable, so it can be used as a map key.
type Pad struct {
	Kind Kind
	X, Y uint8
}

// Top returns the top-row control button at index (0-7, left to right)
func Top(index uint8) Pad {
	return Pad{Kind: KindTop, X: index}
}

// Side returns the side scene button at index (0-7, top to bottom)
func Side(index uint8) Pad {
	return Pad{Kind: KindSide, Y: index}
}

// Grid returns the grid pad at column x, row y (row 0 at the top)
func Grid(x, y uint8) Pad {
	return Pad{Kind: KindGrid, X: x, Y: y}
}

// Index returns the top/side button index, or y*8+x for grid pads
func (p Pad) Index() int {
	switch p.Kind {
	case KindTop:
		return int(p.X)
	case KindSide:
		return int(p.Y)
	default:
		return int(p.Y)*Size + int(p.X)
	}
}

// Valid reports whether the pad exists on the controller
func (p Pad) Valid() bool {
	switch p.Kind {
	case KindTop:
		return p.X < Size && p.Y == 0
	case KindSide:
		return p.X == 0 && p.Y < Size
	case KindGrid:
		return p.X < Size && p.Y < Size
	}
	return false
}

// Less orders pads by kind, then row, then column
func (p Pad) Less(o Pad) bool {
	if p.Kind != o.Kind {
		return p.Kind < o.Kind
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Pad) String() string {
	switch p.Kind {
	case KindTop:
		return fmt.Sprintf("top[%d]", p.X)
	case KindSide:
		return fmt.Sprintf("side[%d]", p.Y)
	default:
		return fmt.Sprintf("grid[%d,%d]", p.X, p.Y)
	}
}

// All returns every pad in Less order: 8 top, 8 side, 64 grid
func All() []Pad {
	pads := make([]Pad, 0, 2*Size+Size*Size)
	for i := uint8(0); i < Size; i++ {
		pads = append(pads, Top(i))
	}
	for i := uint8(0); i < Size; i++ {
		pads = append(pads, Side(i))
	}
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			pads = append(pads, Grid(x, y))
		}
	}
	return pads
}

// Coord is a raw controller coordinate on the 9x9 canvas.
// Row 0 is the top control row, column 8 is the side column and grid
// rows are offset by one.
type Coord struct {
	X, Y int
}

// PadAt converts a raw coordinate to its pad. Returns false for positions
// with no light (the 8,0 corner) or outside the canvas.
func PadAt(c Coord) (Pad, bool) {
	switch {
	case c.X < 0 || c.Y < 0 || c.X > Size || c.Y > Size:
		return Pad{}, false
	case c.Y == 0 && c.X < Size:
		return Top(uint8(c.X)), true
	case c.Y == 0:
		return Pad{}, false
	case c.X == Size:
		return Side(uint8(c.Y - 1)), true
	default:
		return Grid(uint8(c.X), uint8(c.Y-1)), true
	}
}

// Coord returns the raw coordinate of the pad
func (p Pad) Coord() Coord {
	switch p.Kind {
	case KindTop:
		return Coord{X: int(p.X), Y: 0}
	case KindSide:
		return Coord{X: Size, Y: int(p.Y) + 1}
	default:
		return Coord{X: int(p.X), Y: int(p.Y) + 1}
	}
}
