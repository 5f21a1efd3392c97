package theme

import "go-launchvol/grid"

type RGB [3]uint8

// Palette is a gradient of colors
type Palette struct {
	Name   string
	Colors []RGB
}

// Level runs from muted green through amber to red, for volume readouts
var Level = &Palette{
	Name: "level",
	Colors: []RGB{
		{0x2e, 0x5e, 0x3a},
		{0x3f, 0xb9, 0x50},
		{0xe3, 0xc0, 0x3a},
		{0xf0, 0x8c, 0x2e},
		{0xe0, 0x3c, 0x31},
	},
}

// padRGB approximates how each pad color looks on the hardware
var padRGB = map[grid.Color]RGB{
	grid.Off:      {0x30, 0x30, 0x30},
	grid.DimRed:   {0x70, 0x18, 0x18},
	grid.Red:      {0xf0, 0x28, 0x28},
	grid.Orange:   {0xf0, 0x80, 0x20},
	grid.Amber:    {0xf0, 0xb0, 0x20},
	grid.Yellow:   {0xd8, 0xe8, 0x30},
	grid.Green:    {0x30, 0xe0, 0x40},
	grid.DimGreen: {0x18, 0x60, 0x20},
}

// PadRGB returns the screen color of a pad color
func PadRGB(c grid.Color) RGB {
	if rgb, ok := padRGB[c]; ok {
		return rgb
	}
	return padRGB[grid.Off]
}

// Lookup returns interpolated color for normalized value 0-1
func (p *Palette) Lookup(norm float64) RGB {
	if norm <= 0 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[len(p.Colors)-1]
	}

	// Find the two colors to interpolate between
	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	frac := pos - float64(i)

	c0 := p.Colors[i]
	c1 := p.Colors[i+1]

	return RGB{
		lerp(c0[0], c1[0], frac),
		lerp(c0[1], c1[1], frac),
		lerp(c0[2], c1[2], frac),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
