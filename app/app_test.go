package app

import (
	"testing"

	"go-launchvol/canvas"
	"go-launchvol/config"
	"go-launchvol/engine"
	"go-launchvol/grid"
	"go-launchvol/layout"
	"go-launchvol/volume"
)

type memBackend map[grid.Coord]grid.Color

func (m memBackend) Set(c grid.Coord, color grid.Color) error {
	m[c] = color
	return nil
}

func (m memBackend) Flush() error { return nil }
func (m memBackend) Clear() error { return nil }

func (m memBackend) at(p grid.Pad) grid.Color { return m[p.Coord()] }

func setup(t *testing.T, start float64) (*engine.Engine, memBackend, *volume.Memory) {
	t.Helper()
	vol := volume.NewMemory(start)
	b := memBackend{}
	e, err := engine.New(Build(vol, nil), canvas.New(b))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if err := e.Frame(nil); err != nil {
		t.Fatalf("first frame: %v", err)
	}
	return e, b, vol
}

func press(t *testing.T, e *engine.Engine, p grid.Pad) {
	t.Helper()
	for _, msg := range []grid.Message{grid.Press(p), grid.Release(p)} {
		if err := e.Frame(&msg); err != nil {
			t.Fatalf("Frame(%v): %v", msg, err)
		}
	}
}

func TestBuild_StartsOnVolumeTab(t *testing.T) {
	_, b, _ := setup(t, 0)

	if got := b.at(grid.Top(0)); got != grid.Green {
		t.Fatalf("tab 0 = %v, want green (selected)", got)
	}
	if got := b.at(grid.Top(1)); got != grid.DimGreen {
		t.Fatalf("tab 1 = %v, want dim-green", got)
	}
	if got := b.at(grid.Grid(0, 0)); got != grid.Yellow {
		t.Fatalf("first pad = %v, want the yellow marker", got)
	}
}

func TestPresets_SetVolume(t *testing.T) {
	e, b, vol := setup(t, 0.9)

	press(t, e, grid.Top(1))
	if got := b.at(grid.Grid(2, 0)); got != grid.Green {
		t.Fatalf("preset pad = %v, want green", got)
	}

	for i, want := range Presets {
		press(t, e, grid.Grid(uint8(i), 0))
		if got, _ := vol.Get(); got != want {
			t.Fatalf("after preset %d volume = %v, want %v", i, got, want)
		}
	}
}

func TestLock_PushedAndDismissed(t *testing.T) {
	e, b, vol := setup(t, 0.5)

	press(t, e, grid.Top(1))
	press(t, e, LockPad)
	if e.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", e.Depth())
	}
	if got := b.at(grid.Grid(3, 3)); got != grid.DimRed {
		t.Fatalf("locked grid = %v, want dim-red", got)
	}
	if got := b.at(grid.Top(0)); got != grid.Off {
		t.Fatalf("locked top = %v, want off", got)
	}

	// presses while locked do not reach the presets
	press(t, e, grid.Grid(0, 0))
	if got, _ := vol.Get(); got != 0.5 {
		t.Fatalf("volume = %v, want 0.5 (lock swallowed the press)", got)
	}
	if e.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1 after unlock", e.Depth())
	}

	// back on the volume bar
	if _, ok := e.Active().(*layout.TabbedLayout); !ok {
		t.Fatalf("Active = %T, want the root tabs", e.Active())
	}
	if got := b.at(grid.Grid(3, 3)); got == grid.DimRed {
		t.Fatalf("grid still shows the lock after dismiss")
	}
}

func TestBuild_UsesConfiguredColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Colors.Marker = grid.Red
	cfg.Colors.Filled = grid.Amber

	vol := volume.NewMemory(1)
	b := memBackend{}
	e, err := engine.New(Build(vol, cfg), canvas.New(b))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if err := e.Frame(nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := b.at(grid.Grid(7, 7)); got != grid.Red {
		t.Fatalf("last pad = %v, want red marker", got)
	}
	if got := b.at(grid.Grid(0, 0)); got != grid.Amber {
		t.Fatalf("first pad = %v, want amber fill", got)
	}
}
