package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// Checkerboard tiles the canvas in 5×3 cells. Tile parity picks sin(t) or
// cos(t) as the pulse phase, so adjacent tiles breathe out of step, tinted
// by the column-normalized position.
func Checkerboard(t float64, width, height int, put Sink) {
	const (
		pulse = 0.5
		tileW = 5
		tileH = 3
	)

	sin, cos := math.Sincos(t)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			theta := sin
			if ((x/tileW)%2)^((y/tileH)%2) != 0 {
				theta = cos
			}

			l := pixel.InverseLerp(0, float64(width)-1, float64(x))
			color := math.Abs(pulse*theta*0.5+0.5) + l
			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: pixel.FromFloat(color+l, color-l, color*l),
			})
		}
	}
}
