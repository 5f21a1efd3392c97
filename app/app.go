// Package app puts the screens together: a volume bar tab, a presets tab
// and a lock screen.
package app

import (
	"go-launchvol/config"
	"go-launchvol/debug"
	"go-launchvol/grid"
	"go-launchvol/layout"
	"go-launchvol/volume"
)

// Presets are the volumes on the first grid row of the presets tab
var Presets = []float64{0, 0.25, 0.5, 0.75, 1}

// LockPad pushes the lock screen from the presets tab
var LockPad = grid.Side(7)

// Build returns the root layout: tab 0 is the volume bar, tab 1 the presets
func Build(provider volume.Provider, cfg *config.Config) *layout.TabbedLayout {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	style := layout.BarStyle{
		Empty:  cfg.Colors.Empty,
		Filled: cfg.Colors.Filled,
		Marker: cfg.Colors.Marker,
	}
	value := volume.AsValue(provider)

	return layout.NewTabbedLayout(
		layout.NewValueLayout(value, style),
		NewPresets(value, style),
	)
}

// NewPresets builds the presets tab. Each preset pad sets the volume; the
// lock pad pushes a Lock.
func NewPresets(value layout.Value, style layout.BarStyle) *layout.ButtonLayout {
	b := layout.NewButtonLayout(grid.Off)
	for i, v := range Presets {
		color := style.Filled
		if v == 0 {
			color = grid.DimGreen
		}
		b.Bind(grid.Grid(uint8(i), 0), color, layout.Do(func() error {
			debug.Log("app", "preset %d: %.2f", i, v)
			return value.Set(v)
		}))
	}
	b.Bind(LockPad, grid.DimRed, layout.Push(NewLock()))
	return b
}

// Lock ignores the controller until any pad is pressed
type Lock struct {
	layout.Base
}

func NewLock() *Lock {
	return &Lock{}
}

// Draw blanks the top row and side column and fills the grid dim red
func (l *Lock) Draw(c layout.Canvas) error {
	for _, p := range grid.All() {
		color := grid.Off
		if p.Kind == grid.KindGrid {
			color = grid.DimRed
		}
		c.Set(p, color)
	}
	return nil
}
