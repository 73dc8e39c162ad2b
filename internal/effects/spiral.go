package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// Glyph ring for the spiral arms, indexed by rounded distance from center.
var spiralGlyphs = []rune{'▮', '─', '━', '█', '╌', '╍', '═', '■'}

// Spiral draws six rotating arms in polar coordinates around the center.
// Unlike the other generators it paints the foreground glyph and leaves the
// background transparent.
func Spiral(t float64, width, height int, put Sink) {
	cx := float64(width) / 2.0
	cy := float64(height) / 2.0
	const (
		arms   = 6.0
		spin   = 1.0
		factor = 0.1
	)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / 2.1
			dy := float64(y) - cy
			distance := math.Sqrt(dx*dx + dy*dy)
			angle := math.Atan2(dy, dx) + t*spin
			color := math.Abs(math.Sin(angle*arms - distance*factor))

			glyph := spiralGlyphs[int(math.Round(distance))%len(spiralGlyphs)]
			put(x, y, pixel.Pixel{
				Ch: glyph,
				Fg: pixel.FromFloat(color-0.5, color*0.5, color),
				Bg: pixel.Transparent,
			})
		}
	}
}
