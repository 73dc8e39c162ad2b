package pixel

import "math"

// ColorMode selects how a Color is interpreted.
type ColorMode uint8

const (
	// ColorDefault leaves the terminal's own color in place.
	ColorDefault ColorMode = iota
	// ColorTransparent explicitly paints nothing.
	ColorTransparent
	// ColorRGB is an explicit 24-bit color.
	ColorRGB
)

// Color is one cell color. The zero value is ColorDefault. Colors are
// comparable with ==.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
}

// Transparent is the explicit no-fill color.
var Transparent = Color{Mode: ColorTransparent}

// RGB returns an explicit 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// FromFloat maps three float channels to an RGB color. Each channel is
// clamped to [0,1], scaled to [0,255] and rounded to nearest. Inputs outside
// [0,1] are valid; they saturate.
func FromFloat(r, g, b float64) Color {
	return RGB(scale(r), scale(g), scale(b))
}

func scale(d float64) uint8 {
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	return uint8(math.Round(d * 255.0))
}

// Pixel is one rendered cell: a rune plus foreground and background colors.
// Pixels are immutable values constructed fresh per cell per frame.
type Pixel struct {
	Ch rune
	Fg Color
	Bg Color
}

// InverseLerp maps t into the unit range spanned by x..y. Degenerate spans
// (x == y) return 0 rather than dividing by zero.
func InverseLerp(x, y, t float64) float64 {
	if x == y {
		return 0
	}
	return (t - x) / (y - x)
}
