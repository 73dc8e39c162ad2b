package effects

import "github.com/san-kum/pixelfx/internal/pixel"

// Fire is a diffusion-cooling automaton. The grid is a flat intensity buffer
// of (width+2)×(height+2) bytes addressed with a stride of width. The
// asymmetric kernel offsets below depend on that exact layout, including the
// wrap at x=0, and give the flame its shape. Do not symmetrize them.
//
// The grid is the only generator state with real frame-to-frame memory.
// Resizing discards it and restarts from cold; a fire relighting is visually
// unremarkable.
type Fire struct {
	palette Palette
	cells   []uint8
	width   int
	height  int
	src     Source
}

// NewFire allocates a zero-filled grid for width×height and takes ownership
// of src, the fuel source consulted once per bottom-row cell per frame.
func NewFire(width, height int, src Source) *Fire {
	f := &Fire{palette: firePalette(), src: src}
	f.Update(width, height)
	return f
}

// Update resizes the grid. A changed size reallocates and zero-fills, a
// full restart rather than a partial copy.
func (f *Fire) Update(width, height int) {
	f.width = width
	f.height = height
	f.cells = make([]uint8, (width+2)*(height+2))
}

// SetPalette swaps the lookup table; the heat field is untouched.
func (f *Fire) SetPalette(pal Palette) {
	f.palette = pal
}

// Render advances the automaton one step and emits the frame: diffuse and
// cool the interior, reseed the fuel row, then paint. If the canvas size no
// longer matches the grid, the grid is rebuilt first; render never runs over
// a mismatched buffer.
func (f *Fire) Render(t float64, width, height int, put Sink) {
	if f.width != width || f.height != height || len(f.cells) != (width+2)*(height+2) {
		f.Update(width, height)
	}

	// In-place upward diffusion: each cell averages four cells below and
	// diagonal to it, cooled by 2. abs keeps the zero-fuel fixed point at 2
	// instead of wrapping.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := y*width + x
			sum := int(f.cells[o+width-1]) +
				int(f.cells[o+width]) +
				int(f.cells[o+2*width]) +
				int(f.cells[o+2*width+1])
			v := (sum >> 2) - 2
			if v < 0 {
				v = -v
			}
			if v > 255 {
				v = 255
			}
			f.cells[o] = uint8(v)
		}
	}

	// Reseed the fuel row just below the visible grid: full heat with
	// probability 0.3, else cold.
	for x := 0; x < width; x++ {
		o := height*width + x
		if f.src.Float64() > 0.7 {
			f.cells[o] = 255
		} else {
			f.cells[o] = 0
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: f.palette.At(int(f.cells[y*width+x])),
			})
		}
	}
}
