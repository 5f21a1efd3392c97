package grid

import (
	"sort"
	"testing"
)

func TestPadAt_BoundaryCases(t *testing.T) {
	cases := []struct {
		coord Coord
		want  Pad
		ok    bool
	}{
		{Coord{0, 0}, Top(0), true},
		{Coord{7, 0}, Top(7), true},
		{Coord{8, 0}, Pad{}, false},
		{Coord{8, 1}, Side(0), true},
		{Coord{8, 8}, Side(7), true},
		{Coord{0, 1}, Grid(0, 0), true},
		{Coord{4, 4}, Grid(4, 3), true},
		{Coord{7, 8}, Grid(7, 7), true},
		{Coord{9, 1}, Pad{}, false},
		{Coord{0, 9}, Pad{}, false},
		{Coord{-1, 2}, Pad{}, false},
	}
	for _, tc := range cases {
		got, ok := PadAt(tc.coord)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("PadAt(%v) = %v, %v; want %v, %v", tc.coord, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPadCoord_IsBijection(t *testing.T) {
	seen := make(map[Coord]Pad)
	for _, p := range All() {
		if !p.Valid() {
			t.Fatalf("All() returned invalid pad %v", p)
		}
		c := p.Coord()
		if prev, dup := seen[c]; dup {
			t.Fatalf("%v and %v share coord %v", prev, p, c)
		}
		seen[c] = p

		back, ok := PadAt(c)
		if !ok || back != p {
			t.Fatalf("PadAt(%v.Coord()) = %v, %v; want %v", p, back, ok, p)
		}
	}
	if len(seen) != 80 {
		t.Fatalf("len(All()) = %d, want 80", len(seen))
	}
}

func TestAll_IsSortedByLess(t *testing.T) {
	pads := All()
	if !sort.SliceIsSorted(pads, func(i, j int) bool { return pads[i].Less(pads[j]) }) {
		t.Fatalf("All() is not in Less order")
	}
	for i := 1; i < len(pads); i++ {
		if !pads[i-1].Less(pads[i]) {
			t.Fatalf("Less(%v, %v) = false, want strict order", pads[i-1], pads[i])
		}
	}
}

func TestPadIndex(t *testing.T) {
	if got := Grid(4, 3).Index(); got != 28 {
		t.Fatalf("Grid(4,3).Index() = %d, want 28", got)
	}
	if got := Top(5).Index(); got != 5 {
		t.Fatalf("Top(5).Index() = %d, want 5", got)
	}
	if got := Side(2).Index(); got != 2 {
		t.Fatalf("Side(2).Index() = %d, want 2", got)
	}
}

func TestPadValid_RejectsOutOfRange(t *testing.T) {
	for _, p := range []Pad{Top(8), Side(8), Grid(8, 0), Grid(0, 8), {Kind: KindTop, X: 1, Y: 1}, {Kind: 9}} {
		if p.Valid() {
			t.Fatalf("%v.Valid() = true, want false", p)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, name := range []string{"dim-green", "dim_green", "DimGreen", " Dim Green "} {
		c, err := ParseColor(name)
		if err != nil || c != DimGreen {
			t.Fatalf("ParseColor(%q) = %v, %v; want %v", name, c, err, DimGreen)
		}
	}
	for _, c := range Colors() {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseColor(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Fatalf("ParseColor(mauve) returned nil error")
	}
}
