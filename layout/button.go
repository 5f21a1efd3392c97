package layout

import (
	"sort"

	"go-launchvol/grid"
)

// Button is a lit pad bound to an action
type Button struct {
	Color  grid.Color
	Action Action
	stale  bool // needs drawing
}

// ButtonLayout maps pads to actions. Only stale buttons are drawn; Show
// marks everything stale so a layout coming back to the top repaints.
type ButtonLayout struct {
	pads       map[grid.Pad]*Button
	background grid.Color
	repaint    bool // fill unbound grid and side pads on next draw
}

// NewButtonLayout creates an empty button layout. Unbound grid and side
// pads are painted background whenever the layout is shown.
func NewButtonLayout(background grid.Color) *ButtonLayout {
	return &ButtonLayout{
		pads:       make(map[grid.Pad]*Button),
		background: background,
		repaint:    true,
	}
}

// Bind attaches an action to a pad, replacing any previous binding
func (b *ButtonLayout) Bind(p grid.Pad, color grid.Color, action Action) {
	b.pads[p] = &Button{Color: color, Action: action, stale: true}
}

// Unbind removes the binding and paints the pad background
func (b *ButtonLayout) Unbind(p grid.Pad) {
	if _, ok := b.pads[p]; ok {
		delete(b.pads, p)
		b.repaint = true
	}
}

// SetColor changes a bound pad's color
func (b *ButtonLayout) SetColor(p grid.Pad, color grid.Color) {
	if btn, ok := b.pads[p]; ok && btn.Color != color {
		btn.Color = color
		btn.stale = true
	}
}

// Button returns the binding for a pad
func (b *ButtonLayout) Button(p grid.Pad) (Button, bool) {
	btn, ok := b.pads[p]
	if !ok {
		return Button{}, false
	}
	return *btn, true
}

func (b *ButtonLayout) Show() error {
	b.repaint = true
	for _, btn := range b.pads {
		btn.stale = true
	}
	return nil
}

func (b *ButtonLayout) Hide() error { return nil }

func (b *ButtonLayout) Update() (bool, error) {
	if b.repaint {
		return true, nil
	}
	for _, btn := range b.pads {
		if btn.stale {
			return true, nil
		}
	}
	return false, nil
}

func (b *ButtonLayout) Input(msg grid.Message) (Action, error) {
	if !msg.IsPress() {
		return None, nil
	}
	btn, ok := b.pads[msg.Pad]
	if !ok {
		return None, nil
	}
	return btn.Action, nil
}

func (b *ButtonLayout) Draw(c Canvas) error {
	if b.repaint {
		for _, p := range grid.All() {
			if p.Kind == grid.KindTop {
				continue
			}
			if _, bound := b.pads[p]; !bound {
				c.Set(p, b.background)
			}
		}
		b.repaint = false
	}

	pads := make([]grid.Pad, 0, len(b.pads))
	for p, btn := range b.pads {
		if btn.stale {
			pads = append(pads, p)
		}
	}
	sort.Slice(pads, func(i, j int) bool { return pads[i].Less(pads[j]) })
	for _, p := range pads {
		btn := b.pads[p]
		c.Set(p, btn.Color)
		btn.stale = false
	}
	return nil
}
