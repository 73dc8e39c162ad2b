package effects

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientPalette builds a 256-entry palette by blending the given stops in
// HCL space, evenly spaced. Fewer than two stops degenerate to a constant
// palette.
func GradientPalette(stops ...colorful.Color) Palette {
	var p Palette
	if len(stops) == 0 {
		return p
	}
	if len(stops) == 1 {
		r, g, b := stops[0].RGB255()
		for i := range p {
			p[i] = [3]uint8{r, g, b}
		}
		return p
	}

	segments := len(stops) - 1
	for i := range p {
		pos := float64(i) / 255.0 * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		r, g, b := stops[seg].BlendHcl(stops[seg+1], pos-float64(seg)).Clamped().RGB255()
		p[i] = [3]uint8{r, g, b}
	}
	return p
}

// Named gradient palettes selectable on any Paletted simulator. "default"
// restores the simulator's own built-in ramp.
var gradients = map[string]func() Palette{
	"ocean": func() Palette {
		return GradientPalette(
			colorful.Color{R: 0.00, G: 0.02, B: 0.08},
			colorful.Color{R: 0.00, G: 0.35, B: 0.65},
			colorful.Color{R: 0.55, G: 0.90, B: 1.00},
		)
	},
	"toxic": func() Palette {
		return GradientPalette(
			colorful.Color{R: 0.02, G: 0.05, B: 0.00},
			colorful.Color{R: 0.20, G: 0.70, B: 0.05},
			colorful.Color{R: 0.85, G: 1.00, B: 0.30},
		)
	},
	"violet": func() Palette {
		return GradientPalette(
			colorful.Color{R: 0.05, G: 0.00, B: 0.10},
			colorful.Color{R: 0.45, G: 0.10, B: 0.65},
			colorful.Color{R: 1.00, G: 0.75, B: 0.95},
		)
	},
	"ember": func() Palette {
		return GradientPalette(
			colorful.Color{R: 0.05, G: 0.00, B: 0.00},
			colorful.Color{R: 0.80, G: 0.25, B: 0.00},
			colorful.Color{R: 1.00, G: 0.90, B: 0.55},
		)
	},
}

// GradientNames lists the available gradient palettes, sorted, with
// "default" first.
func GradientNames() []string {
	names := make([]string, 0, len(gradients)+1)
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

// LookupGradient returns the named gradient palette. The reserved name
// "default" is handled by callers (it means the simulator's built-in ramp).
func LookupGradient(name string) (Palette, error) {
	fn, ok := gradients[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return fn(), nil
}
