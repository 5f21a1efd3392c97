package midi

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-launchvol/grid"
)

// Model knows the wire protocol of one controller family. All methods are
// pure; the Launchpad type does the I/O.
type Model interface {
	Name() string

	// Match reports whether a MIDI port name belongs to this model
	Match(port string) bool

	// Setup is sent once after the output port opens
	Setup() []gomidi.Message

	// Encode builds the message that lights the pad at c
	Encode(c grid.Coord, color grid.Color) (gomidi.Message, bool)

	// Decode turns an incoming message into a pad coordinate
	Decode(msg gomidi.Message) (c grid.Coord, pressed bool, ok bool)

	// Reset turns every light off
	Reset() []gomidi.Message
}

// ModelByName returns "mini" or "x"
func ModelByName(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mini", "launchpad-mini", "s":
		return Mini, nil
	case "x", "launchpad-x":
		return X, nil
	}
	return nil, fmt.Errorf("unknown controller model %q", name)
}

// Models lists every supported model
func Models() []Model {
	return []Model{Mini, X}
}

// Launchpad Mini / Launchpad S
//
// Grid and side column: note 16*row + col, row 0 at the top, col 8 is the
// side column. Top row: CC 104-111. Colors are velocity
// 16*green + red + 12 with 2-bit red and green intensities.
var Mini Model = mini{}

type mini struct{}

const (
	miniTopCC = 104
	miniFlags = 12 // copy + clear: write both buffers
)

// miniColors holds {red, green} intensity (0-3) per color
var miniColors = map[grid.Color][2]uint8{
	grid.Off:      {0, 0},
	grid.DimRed:   {1, 0},
	grid.Red:      {3, 0},
	grid.Orange:   {3, 1},
	grid.Amber:    {3, 3},
	grid.Yellow:   {1, 3},
	grid.Green:    {0, 3},
	grid.DimGreen: {0, 1},
}

func (mini) Name() string { return "Launchpad Mini" }

func (mini) Match(port string) bool {
	name := strings.ToLower(port)
	return strings.Contains(name, "launchpad mini") || strings.Contains(name, "launchpad s")
}

func (mini) Setup() []gomidi.Message {
	return []gomidi.Message{gomidi.ControlChange(0, 0, 0)}
}

func miniVelocity(color grid.Color) uint8 {
	rg := miniColors[color]
	return 16*rg[1] + rg[0] + miniFlags
}

func (mini) Encode(c grid.Coord, color grid.Color) (gomidi.Message, bool) {
	if _, ok := grid.PadAt(c); !ok {
		return nil, false
	}
	vel := miniVelocity(color)
	if c.Y == 0 {
		return gomidi.ControlChange(0, uint8(miniTopCC+c.X), vel), true
	}
	return gomidi.NoteOn(0, uint8(16*(c.Y-1)+c.X), vel), true
}

func (mini) Decode(msg gomidi.Message) (grid.Coord, bool, bool) {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return miniNote(key, velocity > 0)
	case msg.GetNoteOff(&channel, &key, &velocity):
		return miniNote(key, false)
	case msg.GetControlChange(&channel, &key, &velocity):
		if key >= miniTopCC && key < miniTopCC+grid.Size {
			return grid.Coord{X: int(key - miniTopCC), Y: 0}, velocity > 0, true
		}
	}
	return grid.Coord{}, false, false
}

func miniNote(key uint8, pressed bool) (grid.Coord, bool, bool) {
	row, col := int(key/16), int(key%16)
	if row >= grid.Size || col > grid.Size {
		return grid.Coord{}, false, false
	}
	return grid.Coord{X: col, Y: row + 1}, pressed, true
}

func (mini) Reset() []gomidi.Message {
	return []gomidi.Message{gomidi.ControlChange(0, 0, 0)}
}

// Launchpad X in programmer mode
//
// Grid: note (row+1)*10 + col+1 with row 0 at the bottom. Side column:
// 19, 29 ... 89. Top row: CC 91-98. Colors are palette indices.
var X Model = launchpadX{}

type launchpadX struct{}

const xTopCC = 91

// Launchpad X palette indices (Programmer's Reference Manual)
var xColors = map[grid.Color]uint8{
	grid.Off:      0,
	grid.DimRed:   7,
	grid.Red:      5,
	grid.Orange:   9,
	grid.Amber:    84,
	grid.Yellow:   13,
	grid.Green:    21,
	grid.DimGreen: 19,
}

func (launchpadX) Name() string { return "Launchpad X" }

// Match picks the MIDI port, not the DAW port
func (launchpadX) Match(port string) bool {
	name := strings.ToLower(port)
	return (strings.Contains(name, "launchpad x") || strings.Contains(name, "lpx")) &&
		strings.Contains(name, "midi")
}

func (launchpadX) Setup() []gomidi.Message {
	return []gomidi.Message{
		// Programmer mode: F0 00 20 29 02 0C 00 7F F7
		gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F}),
		// Brightness to maximum: F0 00 20 29 02 0C 08 <brightness> F7
		gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x08, 0x7F}),
		// Disable internal LED feedback so only we light pads
		gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x0A, 0x00, 0x00}),
	}
}

// xNumber returns the note/CC number of a raw coordinate
func xNumber(c grid.Coord) uint8 {
	if c.Y == 0 {
		return uint8(xTopCC + c.X)
	}
	row := grid.Size - c.Y // bottom row is 0
	return uint8((row+1)*10 + c.X + 1)
}

func (launchpadX) Encode(c grid.Coord, color grid.Color) (gomidi.Message, bool) {
	if _, ok := grid.PadAt(c); !ok {
		return nil, false
	}
	vel := xColors[color]
	if c.Y == 0 || c.X == grid.Size {
		return gomidi.ControlChange(0, xNumber(c), vel), true
	}
	return gomidi.NoteOn(0, xNumber(c), vel), true
}

func (launchpadX) Decode(msg gomidi.Message) (grid.Coord, bool, bool) {
	var channel, num, value uint8
	switch {
	case msg.GetNoteOn(&channel, &num, &value):
		return xCoord(num, value > 0)
	case msg.GetNoteOff(&channel, &num, &value):
		return xCoord(num, false)
	case msg.GetControlChange(&channel, &num, &value):
		return xCoord(num, value > 0)
	}
	return grid.Coord{}, false, false
}

func xCoord(num uint8, pressed bool) (grid.Coord, bool, bool) {
	if num >= xTopCC && num < xTopCC+grid.Size {
		return grid.Coord{X: int(num - xTopCC), Y: 0}, pressed, true
	}
	row := int(num/10) - 1
	col := int(num%10) - 1
	if row < 0 || row >= grid.Size || col < 0 || col > grid.Size {
		return grid.Coord{}, false, false
	}
	return grid.Coord{X: col, Y: grid.Size - row}, pressed, true
}

func (m launchpadX) Reset() []gomidi.Message {
	pads := grid.All()
	msgs := make([]gomidi.Message, 0, len(pads))
	for _, p := range pads {
		if msg, ok := m.Encode(p.Coord(), grid.Off); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
