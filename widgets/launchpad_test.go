package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"go-launchvol/grid"
	"go-launchvol/theme"
)

func TestRenderGrid_Shape(t *testing.T) {
	out := RenderGrid(theme.Default(), nil)
	if h := lipgloss.Height(out); h != GridHeight {
		t.Fatalf("height = %d, want %d", h, GridHeight)
	}
	if w := lipgloss.Width(out); w != (grid.Size+1)*PadWidth-1 {
		t.Fatalf("width = %d, want %d", w, (grid.Size+1)*PadWidth-1)
	}
	lines := strings.Split(out, "\n")
	// top row has no pad in the side column
	if strings.Count(lines[0], "□") != grid.Size {
		t.Fatalf("top line = %q, want %d pads", lines[0], grid.Size)
	}
	if strings.Count(lines[1], "□") != grid.Size+1 {
		t.Fatalf("grid line = %q, want %d pads", lines[1], grid.Size+1)
	}
}

func TestRenderGrid_LitPads(t *testing.T) {
	out := RenderGrid(theme.Default(), map[grid.Pad]grid.Color{
		grid.Grid(0, 0): grid.Green,
		grid.Side(7):    grid.Red,
		grid.Top(3):    grid.Off,
	})
	if n := strings.Count(out, "■"); n != 2 {
		t.Fatalf("lit pads = %d, want 2", n)
	}
}

func TestHitTest(t *testing.T) {
	cases := []struct {
		x, y int
		want grid.Pad
		ok   bool
	}{
		{0, 0, grid.Top(0), true},
		{15, 0, grid.Top(7), true},
		{16, 0, grid.Pad{}, false},
		{16, 1, grid.Side(0), true},
		{0, 1, grid.Grid(0, 0), true},
		{9, 4, grid.Grid(4, 3), true},
		{17, 8, grid.Side(7), true},
		{0, 9, grid.Pad{}, false},
		{18, 3, grid.Pad{}, false},
		{-1, 3, grid.Pad{}, false},
	}
	for _, tc := range cases {
		got, ok := HitTest(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("HitTest(%d, %d) = %v %v, want %v %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}
