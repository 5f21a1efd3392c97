package grid

import (
	"fmt"
	"strings"
)

// Color is the fixed set of colors a pad can show. Device models map each
// one to their native velocity or palette index.
type Color uint8

const (
	Off Color = iota
	DimRed
	Red
	Orange
	Amber
	Yellow
	Green
	DimGreen

	numColors
)

var colorNames = [numColors]string{
	Off:      "off",
	DimRed:   "dim-red",
	Red:      "red",
	Orange:   "orange",
	Amber:    "amber",
	Yellow:   "yellow",
	Green:    "green",
	DimGreen: "dim-green",
}

func (c Color) String() string {
	if c < numColors {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Colors returns every color in declaration order
func Colors() []Color {
	out := make([]Color, 0, numColors)
	for c := Off; c < numColors; c++ {
		out = append(out, c)
	}
	return out
}

// ParseColor looks up a color by name ("dim-green", "dim_green" and
// "DimGreen" all work)
func ParseColor(name string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "", "-", "", " ", "").Replace(norm)
	for c := Off; c < numColors; c++ {
		if strings.ReplaceAll(colorNames[c], "-", "") == norm {
			return c, nil
		}
	}
	return Off, fmt.Errorf("unknown color %q", name)
}

// MarshalText lets colors appear by name in config files
func (c Color) MarshalText() ([]byte, error) {
	if c >= numColors {
		return nil, fmt.Errorf("unknown color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
