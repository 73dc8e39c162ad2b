package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// Palette is a fixed 256-entry intensity-to-color lookup table. The index
// domain is the 8-bit intensity range; At clamps so a lookup can never fail.
type Palette [256][3]uint8

// At returns the color for intensity i, clamping out-of-range indices.
func (p *Palette) At(i int) pixel.Color {
	if i < 0 {
		i = 0
	}
	if i > 255 {
		i = 255
	}
	c := p[i]
	return pixel.RGB(c[0], c[1], c[2])
}

// plasmaPalette builds the cos/sin ramp used by Plasma. The green channel
// keeps the original formula's saturating cast of the raw parameter v
// (roughly [-3,3]): negative values floor to 0, positive ones truncate to
// 0..2. The last entry stays black; the loop bound is deliberate.
func plasmaPalette() Palette {
	var p Palette
	for i := 0; i < 255; i++ {
		v := float64(i)/255.0*6.0 - 3.0
		r := math.Max(0, math.Floor(math.Cos(v*math.Pi)*255.0))
		g := math.Max(0, v)
		b := math.Max(0, math.Floor(math.Sin(v*math.Pi)*255.0))
		p[i] = [3]uint8{uint8(r), uint8(g), uint8(b)}
	}
	return p
}

// blobsPalette is a linear teal ramp.
func blobsPalette() Palette {
	var p Palette
	for i := 0; i < 255; i++ {
		t := uint8(i)
		p[i] = [3]uint8{t / 8, t / 2, t / 2}
	}
	return p
}

// firePalette is a heat ramp: red brightest, green a quarter, blue a
// sixteenth, so low intensities fade through deep red to black.
func firePalette() Palette {
	var p Palette
	for i := 0; i < 255; i++ {
		t := uint8(i)
		p[i] = [3]uint8{t, t >> 2, t >> 4}
	}
	return p
}

// Paletted is implemented by simulators whose palette can be swapped for a
// named gradient without disturbing their simulation state.
type Paletted interface {
	SetPalette(Palette)
}
