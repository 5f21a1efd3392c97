package theme

import (
	"testing"

	"go-launchvol/grid"
)

func TestLookup_Endpoints(t *testing.T) {
	if got := Level.Lookup(-1); got != Level.Colors[0] {
		t.Fatalf("Lookup(-1) = %v, want %v", got, Level.Colors[0])
	}
	last := Level.Colors[len(Level.Colors)-1]
	if got := Level.Lookup(2); got != last {
		t.Fatalf("Lookup(2) = %v, want %v", got, last)
	}
}

func TestLookup_Interpolates(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}
	if got, want := p.Lookup(0.5), (RGB{100, 50, 25}); got != want {
		t.Fatalf("Lookup(0.5) = %v, want %v", got, want)
	}
}

func TestPadRGB_CoversEveryColor(t *testing.T) {
	seen := map[RGB]grid.Color{}
	for _, c := range grid.Colors() {
		rgb := PadRGB(c)
		if prev, dup := seen[rgb]; dup {
			t.Fatalf("%v and %v share screen color %v", prev, c, rgb)
		}
		seen[rgb] = c
	}
	if got := PadRGB(grid.Color(200)); got != PadRGB(grid.Off) {
		t.Fatalf("PadRGB(unknown) = %v, want the off color", got)
	}
}

func TestTheme_PadHex(t *testing.T) {
	th := Default()
	if got := string(th.Pad(grid.Red)); got != "#f02828" {
		t.Fatalf("Pad(red) = %q, want %q", got, "#f02828")
	}
}
