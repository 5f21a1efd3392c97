package layout

import (
	"fmt"

	"go-launchvol/debug"
	"go-launchvol/grid"
)

// Value is a scalar in [0,1] owned by something outside the layout
type Value interface {
	Get() (float64, error)
	Set(v float64) error
}

// ValueLayout shows a Value as a bar over the grid. Pressing a grid pad sets
// the value to that pad's position; side buttons 0 and 1 nudge it up and
// down by one pad.
type ValueLayout struct {
	value   Value
	style   BarStyle
	current float64
	sampled bool
	dirty   bool
}

// NewValueLayout creates a value layout drawing with style
func NewValueLayout(v Value, style BarStyle) *ValueLayout {
	return &ValueLayout{value: v, style: style, dirty: true}
}

// Current returns the last sampled value
func (l *ValueLayout) Current() float64 {
	return l.current
}

func (l *ValueLayout) Show() error {
	l.dirty = true
	return nil
}

func (l *ValueLayout) Hide() error { return nil }

func (l *ValueLayout) Update() (bool, error) {
	v, err := l.value.Get()
	if err != nil {
		return false, err
	}
	v = Clamp(v)
	if !l.sampled || v != l.current {
		l.current = v
		l.sampled = true
		l.dirty = true
	}
	return l.dirty, nil
}

func (l *ValueLayout) Input(msg grid.Message) (Action, error) {
	if !msg.IsPress() {
		return None, nil
	}

	var target float64
	switch msg.Pad.Kind {
	case grid.KindGrid:
		target = PadValue(msg.Pad)
	case grid.KindSide:
		step := 1 / float64(BarPads-1)
		switch msg.Pad.Y {
		case 0:
			target = Clamp(l.current + step)
		case 1:
			target = Clamp(l.current - step)
		default:
			return None, nil
		}
	default:
		return None, nil
	}

	debug.Log("value", "%v -> set %.3f", msg.Pad, target)
	if err := l.value.Set(target); err != nil {
		return None, fmt.Errorf("set value: %w", err)
	}
	l.current = target
	l.dirty = true
	return None, nil
}

func (l *ValueLayout) Draw(c Canvas) error {
	DrawBar(c, l.current, l.style)
	for i := uint8(0); i < grid.Size; i++ {
		c.Set(grid.Side(i), grid.Off)
	}
	c.Set(grid.Side(0), grid.DimGreen)
	c.Set(grid.Side(1), grid.DimRed)
	l.dirty = false
	return nil
}
