package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// Pulse emits cosine rings from the canvas center. Distance is Chebyshev
// (max of the axis distances) with x compressed by 2.1, so the rings read
// as squares with the terminal cell aspect corrected.
func Pulse(t float64, width, height int, put Sink) {
	cx := float64(width) / 2.0
	cy := float64(height) / 2.0
	speed := 2 * math.Pi

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			l := pixel.InverseLerp(0, float64(width)-1, float64(x))
			freq := math.Abs(math.Sin(l+t)) * 0.5
			dx := math.Abs((float64(x) - cx) / 2.1)
			dy := math.Abs(float64(y) - cy)
			distance := math.Max(dx, dy)
			pulse := math.Abs(math.Cos(distance*freq - speed*t))
			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: pixel.FromFloat(pulse*l+0.1, pulse*l+0.2, pulse*l+0.3),
			})
		}
	}
}
