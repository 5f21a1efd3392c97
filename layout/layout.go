// Package layout holds the screens that own the controller: the Layout
// interface, the actions they return, and the stock button, value and
// tabbed layouts.
package layout

import (
	"errors"

	"go-launchvol/grid"
)

// ErrUnavailable is returned by Update when the value a layout shows could
// not be read. The engine skips the frame.
var ErrUnavailable = errors.New("value unavailable")

// Canvas is where layouts draw. Set only stages; the engine flushes.
type Canvas interface {
	Set(p grid.Pad, color grid.Color)
}

// Layout owns the whole controller while it is on top of the stack
type Layout interface {
	// Show is called right before this layout becomes active
	Show() error

	// Hide is called right before this layout stops being active
	Hide() error

	// Update is called when the layout becomes active, after every input,
	// and on every tick. It returns true if the pads need redrawing.
	Update() (bool, error)

	// Input is called with each message while this layout is active
	Input(msg grid.Message) (Action, error)

	// Draw sets every pad the layout cares about. Drawing twice with the
	// same state must stage the same colors.
	Draw(c Canvas) error
}

// Base gives the default lifecycle. Embed it and implement Draw.
// Any press dismisses the layout.
type Base struct{}

func (Base) Show() error { return nil }
func (Base) Hide() error { return nil }

func (Base) Update() (bool, error) { return false, nil }

func (Base) Input(msg grid.Message) (Action, error) {
	if msg.IsPress() {
		return Pop(), nil
	}
	return None, nil
}
