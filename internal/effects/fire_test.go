package effects

import (
	"math/rand"
	"testing"

	"github.com/san-kum/pixelfx/internal/pixel"
)

// zeroSource never produces fuel: every draw is 0.
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func TestFire_GridSizing(t *testing.T) {
	f := NewFire(5, 4, zeroSource{})

	if len(f.cells) != 7*6 {
		t.Fatalf("grid length = %d, want %d", len(f.cells), 7*6)
	}
	for i, v := range f.cells {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0 after construction", i, v)
		}
	}

	f.cells[3] = 99
	f.Update(8, 2)
	if len(f.cells) != 10*4 {
		t.Fatalf("grid length after Update = %d, want %d", len(f.cells), 10*4)
	}
	for i, v := range f.cells {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0 after resize (full restart)", i, v)
		}
	}
}

func TestFire_ZeroFuelFixedPoint(t *testing.T) {
	// With the fuel source pinned to zero the automaton does not stay
	// all-zero: cooling is abs((sum>>2) - 2), so cold cells step to 2. The
	// bottom interior row is fed only by the cold border and sits at the
	// fixed point 2 forever. Everything stays within the cooling bound.
	const width, height = 6, 5
	f := NewFire(width, height, zeroSource{})

	for frame := 1; frame <= 10; frame++ {
		f.Render(0, width, height, func(x, y int, p pixel.Pixel) {})

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := f.cells[y*width+x]
				if v > 2 {
					t.Fatalf("frame %d: cell (%d,%d) = %d, exceeds cooling bound 2", frame, x, y, v)
				}
			}
		}
		for x := 0; x < width; x++ {
			if v := f.cells[(height-1)*width+x]; v != 2 {
				t.Fatalf("frame %d: bottom row cell (%d,%d) = %d, want fixed point 2", frame, x, height-1, v)
			}
		}
	}
}

func TestFire_SeedRowFullFuel(t *testing.T) {
	// A source that always exceeds the 0.7 threshold sets the whole fuel
	// row to 255 each frame.
	const width, height = 4, 3
	f := NewFire(width, height, fullSource{})
	f.Render(0, width, height, func(x, y int, p pixel.Pixel) {})

	for x := 0; x < width; x++ {
		if v := f.cells[height*width+x]; v != 255 {
			t.Fatalf("fuel row cell %d = %d, want 255", x, v)
		}
	}
}

type fullSource struct{}

func (fullSource) Float64() float64 { return 0.99 }

func TestFire_SelfHealsOnMismatch(t *testing.T) {
	f := NewFire(5, 4, rand.New(rand.NewSource(1)))
	f.Render(0, 9, 7, func(x, y int, p pixel.Pixel) {})

	if len(f.cells) != 11*9 {
		t.Fatalf("grid length = %d, want %d after self-heal", len(f.cells), 11*9)
	}
}

func TestFire_DeterministicGivenSeed(t *testing.T) {
	a := NewFire(12, 8, rand.New(rand.NewSource(5)))
	b := NewFire(12, 8, rand.New(rand.NewSource(5)))

	for i := 0; i < 4; i++ {
		ca := collect(a.Render, 0, 12, 8)
		cb := collect(b.Render, 0, 12, 8)
		for j := range ca {
			if ca[j] != cb[j] {
				t.Fatalf("frame %d cell %d differs between identically seeded fires", i, j)
			}
		}
	}
}

func TestFire_RowMajorSweep(t *testing.T) {
	f := NewFire(4, 3, rand.New(rand.NewSource(2)))
	cells := collect(f.Render, 0, 4, 3)

	if len(cells) != 12 {
		t.Fatalf("expected 12 sink calls, got %d", len(cells))
	}
	for i, c := range cells {
		if c.x != i%4 || c.y != i/4 {
			t.Fatalf("call %d at (%d,%d), out of row-major order", i, c.x, c.y)
		}
	}
}
