package effects

import (
	"math"

	"github.com/san-kum/pixelfx/internal/pixel"
)

const blobCount = 5

// blob is one metaball. Size factors and angular speed are drawn once at
// construction; x and y are recomputed from the animation phase every frame
// and held only as the last-computed position.
type blob struct {
	sx, sy float64
	speed  float64
	x, y   float64
}

// Blobs renders a metaball field. Each cell accumulates the product of its
// Euclidean distances to every blob. Multiplicative on purpose: a blob
// sitting exactly on a cell zeroes the whole metric and burns a bright
// convergence point. Summation would lose that signature.
type Blobs struct {
	palette Palette
	shapes  [blobCount]blob
}

// NewBlobs draws the per-blob parameters from src once and fixes them for
// the simulator's lifetime.
func NewBlobs(width, height int, src Source) *Blobs {
	b := &Blobs{palette: blobsPalette()}
	for i := range b.shapes {
		b.shapes[i] = blob{
			sx:    src.Float64() * 0.5,
			sy:    src.Float64() * 0.5,
			speed: src.Float64()*math.Pi*32.0 - math.Pi*16.0,
		}
	}
	return b
}

func (b *Blobs) Update(width, height int) {}

// SetPalette swaps the lookup table.
func (b *Blobs) SetPalette(pal Palette) {
	b.palette = pal
}

// Render recomputes every blob position from the phase, then sweeps the
// grid. Positions are deterministic given t and the fixed parameters.
func (b *Blobs) Render(t float64, width, height int, put Sink) {
	cx := float64(width) / 2.0
	cy := float64(height) / 2.0

	phase := t / 300.0
	shift := 0.0
	for i := range b.shapes {
		blob := &b.shapes[i]
		blob.x = math.Sin((phase+shift)*2*math.Pi*blob.speed)*float64(width)*blob.sx + cx
		blob.y = math.Cos((phase+shift)*2*math.Pi*blob.speed)*float64(height)*blob.sy + cy
		shift += 2.0
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := 1.0
			for i := range b.shapes {
				xq := float64(x) - b.shapes[i].x
				yq := float64(y) - b.shapes[i].y
				s *= math.Sqrt(xq*xq + yq*yq)
			}

			idx := int(math.Floor(float64(width)*2.0 - s/1e5))
			put(x, y, pixel.Pixel{
				Ch: ' ',
				Bg: b.palette.At(idx),
			})
		}
	}
}
