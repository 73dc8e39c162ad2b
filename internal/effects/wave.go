package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// VerticalWave sweeps a blue band of intensity across the canvas. The band
// is centered at width/2 and offset per row by a sinusoidal phase.
func VerticalWave(t float64, width, height int, put Sink) {
	const (
		speed = 3.0
		freq  = 0.05
	)
	amp := float64(width) / 4.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			phase := math.Sin(float64(y)*freq+t*speed) * amp
			intensity := math.Abs((float64(x) - float64(width)/2.0 + phase) / amp)
			intensity = clamp01(1.0 - intensity)
			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: pixel.FromFloat(intensity*0.3, intensity*0.3, intensity),
			})
		}
	}
}

// HorizontalWave is the red transpose of VerticalWave: the band is centered
// at height/2 and the phase runs along columns, compressed by the usual 2.1
// cell aspect correction.
func HorizontalWave(t float64, width, height int, put Sink) {
	const (
		speed = 3.0
		freq  = 0.07
	)
	amp := float64(height) / 4.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			phase := math.Sin((float64(x)/2.1)*freq+t*speed) * amp
			intensity := math.Abs((float64(y) - float64(height)/2.0 + phase) / amp)
			intensity = clamp01(1.0 - intensity)
			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: pixel.FromFloat(intensity, intensity*0.3, intensity*0.3),
			})
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
