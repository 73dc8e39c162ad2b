package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// Plasma renders the classic interference field: three sinusoidal terms over
// normalized cell coordinates, summed and mapped through a cos/sin palette.
// It owns no simulation buffers; the field recomputes fully from the canvas
// size each frame, so Update is a no-op.
type Plasma struct {
	palette Palette
}

// NewPlasma returns a plasma field sized for width×height. The size is
// accepted for interface symmetry; nothing here depends on it.
func NewPlasma(width, height int) *Plasma {
	return &Plasma{palette: plasmaPalette()}
}

func (p *Plasma) Update(width, height int) {}

// SetPalette swaps the lookup table; the field itself is unaffected.
func (p *Plasma) SetPalette(pal Palette) {
	p.palette = pal
}

// Render emits one frame. The summed field lies in [-3,3] by construction,
// but the index is still clamped before lookup so extreme phases can never
// escape the palette domain.
func (p *Plasma) Render(t float64, width, height int, put Sink) {
	tSin, tCos := math.Sincos(t)

	for y := 0; y < height; y++ {
		dy := float64(y)/float64(height) - 0.5
		for x := 0; x < width; x++ {
			dx := float64(x)/float64(width) - 0.5
			cx := dx + 0.5*tSin
			cy := dy + 0.5*tCos

			v := math.Sin(dx*10.0 + t)
			v += math.Sin(math.Sqrt(50.0*(cx*cx+cy*cy)+1.0) + t)
			v += math.Cos(math.Sqrt(dx*dx+dy*dy) - t)
			idx := int(math.Floor((v/6.0 + 0.5) * 255.0))

			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: p.palette.At(idx),
			})
		}
	}
}
