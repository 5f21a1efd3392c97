package layout

import (
	"fmt"

	"go-launchvol/debug"
	"go-launchvol/grid"
)

// TabbedLayout switches between child layouts with the top row buttons.
// The top row belongs to the tabs; children draw the grid and side column.
// Switching tabs hides the outgoing child and shows the incoming one.
type TabbedLayout struct {
	tabs     []Layout
	selected int
	switched bool // tab changed since the last Update
}

// NewTabbedLayout creates a tabbed layout. At most eight tabs have a top
// button; extra children are only reachable through Select.
func NewTabbedLayout(tabs ...Layout) *TabbedLayout {
	return &TabbedLayout{tabs: tabs}
}

// Selected returns the index of the visible tab
func (t *TabbedLayout) Selected() int {
	return t.selected
}

// Tabs returns the number of children
func (t *TabbedLayout) Tabs() int {
	return len(t.tabs)
}

// Select makes tab i visible, running Hide/Show on the two children
func (t *TabbedLayout) Select(i int) error {
	if i < 0 || i >= len(t.tabs) {
		return fmt.Errorf("tab %d out of range (have %d)", i, len(t.tabs))
	}
	if i == t.selected {
		return nil
	}
	if err := t.tabs[t.selected].Hide(); err != nil {
		return fmt.Errorf("hide tab %d: %w", t.selected, err)
	}
	debug.Log("tabs", "select %d -> %d", t.selected, i)
	t.selected = i
	t.switched = true
	if err := t.tabs[i].Show(); err != nil {
		return fmt.Errorf("show tab %d: %w", i, err)
	}
	return nil
}

func (t *TabbedLayout) active() Layout {
	if t.selected < len(t.tabs) {
		return t.tabs[t.selected]
	}
	return nil
}

func (t *TabbedLayout) Show() error {
	t.selected = 0
	t.switched = true
	if child := t.active(); child != nil {
		return child.Show()
	}
	return nil
}

func (t *TabbedLayout) Hide() error {
	if child := t.active(); child != nil {
		return child.Hide()
	}
	return nil
}

func (t *TabbedLayout) Update() (bool, error) {
	changed := t.switched
	if child := t.active(); child != nil {
		childChanged, err := child.Update()
		if err != nil {
			return false, err
		}
		changed = changed || childChanged
	}
	t.switched = false
	return changed, nil
}

func (t *TabbedLayout) Input(msg grid.Message) (Action, error) {
	if msg.IsPress() && msg.Pad.Kind == grid.KindTop {
		if i := msg.Pad.Index(); i < len(t.tabs) {
			if err := t.Select(i); err != nil {
				return None, err
			}
			return None, nil
		}
	}
	if child := t.active(); child != nil {
		return child.Input(msg)
	}
	return None, nil
}

func (t *TabbedLayout) Draw(c Canvas) error {
	for i := uint8(0); i < grid.Size; i++ {
		c.Set(grid.Top(i), grid.Off)
	}
	for i := range t.tabs {
		if i >= grid.Size {
			break
		}
		if i == t.selected {
			c.Set(grid.Top(uint8(i)), grid.Green)
		} else {
			c.Set(grid.Top(uint8(i)), grid.DimGreen)
		}
	}

	if child := t.active(); child != nil {
		return child.Draw(c)
	}
	return nil
}
