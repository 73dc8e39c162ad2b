package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// GIF cell blocks: one terminal cell becomes an 8x16 pixel rectangle.
const (
	cellW = 8
	cellH = 16
)

// Recorder accumulates captured frames and writes them out as an animated
// GIF. GIF frames carry at most 256 colors; the recorder keeps the first 256
// distinct cell colors and maps the rest to their nearest kept color in RGB
// space.
type Recorder struct {
	frames  []*image.Paletted
	palette color.Palette
	index   map[pixel.Color]uint8
}

func NewRecorder() *Recorder {
	return &Recorder{
		palette: color.Palette{color.Black},
		index:   make(map[pixel.Color]uint8),
	}
}

// Len reports how many frames have been captured.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Capture adds one frame from a row-major cell slice. Cells paint their
// background color; glyph-only cells (transparent background) fall back to
// the foreground color.
func (r *Recorder) Capture(cells []pixel.Pixel, width, height int) {
	img := image.NewPaletted(image.Rect(0, 0, width*cellW, height*cellH), r.palette)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := r.lookup(cellColor(cells[y*width+x]))
			for py := 0; py < cellH; py++ {
				for px := 0; px < cellW; px++ {
					img.SetColorIndex(x*cellW+px, y*cellH+py, idx)
				}
			}
		}
	}

	// Frames share the recorder's palette, which may have grown during
	// this capture.
	img.Palette = r.palette
	r.frames = append(r.frames, img)
}

func cellColor(p pixel.Pixel) pixel.Color {
	if p.Bg.Mode == pixel.ColorRGB {
		return p.Bg
	}
	if p.Fg.Mode == pixel.ColorRGB {
		return p.Fg
	}
	return pixel.RGB(0, 0, 0)
}

func (r *Recorder) lookup(c pixel.Color) uint8 {
	if idx, ok := r.index[c]; ok {
		return idx
	}

	if len(r.palette) < 256 {
		r.palette = append(r.palette, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		idx := uint8(len(r.palette) - 1)
		r.index[c] = idx
		return idx
	}

	// Palette is full: nearest kept color wins.
	target := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best, bestDist := 0, 2.0
	for i, pc := range r.palette {
		cr, cg, cb, _ := pc.RGBA()
		kept := colorful.Color{R: float64(cr >> 8) / 255, G: float64(cg >> 8) / 255, B: float64(cb >> 8) / 255}
		if d := target.DistanceRgb(kept); d < bestDist {
			best, bestDist = i, d
		}
	}
	idx := uint8(best)
	r.index[c] = idx
	return idx
}

// Save writes the captured frames as a looping GIF.
func (r *Recorder) Save(path string) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 3)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
