package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pixelfx/internal/effects"
	"github.com/san-kum/pixelfx/internal/pixel"
)

// RenderCells runs one render pass and returns the frame as a row-major
// cell slice. Every consumer of a frame (painting, recording) shares one
// pass, so stateful simulators advance exactly once per frame.
func RenderCells(r effects.Renderer, t float64, width, height int) []pixel.Pixel {
	cells := make([]pixel.Pixel, 0, width*height)
	r.Render(t, width, height, func(x, y int, p pixel.Pixel) {
		cells = append(cells, p)
	})
	return cells
}

type styleKey struct {
	fg, bg pixel.Color
}

// Painter renders cell slices into ANSI strings. Styles are cached per
// (fg,bg) pair; effect palettes have at most 256 entries so the cache stays
// small across frames.
type Painter struct {
	styles map[styleKey]lipgloss.Style
}

func NewPainter() *Painter {
	return &Painter{styles: make(map[styleKey]lipgloss.Style)}
}

// Paint styles a row-major cell slice into a newline-joined frame string.
func (p *Painter) Paint(cells []pixel.Pixel, width, height int) string {
	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			b.WriteString(p.style(c).Render(string(c.Ch)))
		}
	}
	return b.String()
}

func (p *Painter) style(c pixel.Pixel) lipgloss.Style {
	key := styleKey{fg: c.Fg, bg: c.Bg}
	if s, ok := p.styles[key]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if c.Fg.Mode == pixel.ColorRGB {
		s = s.Foreground(lipgloss.Color(hex(c.Fg)))
	}
	if c.Bg.Mode == pixel.ColorRGB {
		s = s.Background(lipgloss.Color(hex(c.Bg)))
	}
	p.styles[key] = s
	return s
}

func hex(c pixel.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
