package effects

import (
	"testing"

	"github.com/san-kum/pixelfx/internal/pixel"
)

type cell struct {
	x, y int
	p    pixel.Pixel
}

// collect runs a generator and records every sink invocation in order.
func collect(fn Func, t float64, width, height int) []cell {
	var cells []cell
	fn(t, width, height, func(x, y int, p pixel.Pixel) {
		cells = append(cells, cell{x, y, p})
	})
	return cells
}

var statelessGenerators = map[string]Func{
	"vwave":   VerticalWave,
	"hwave":   HorizontalWave,
	"pulse":   Pulse,
	"spiral":  Spiral,
	"checker": Checkerboard,
}

func TestStateless_RowMajorSweep(t *testing.T) {
	const width, height = 4, 3

	for name, fn := range statelessGenerators {
		t.Run(name, func(t *testing.T) {
			cells := collect(fn, 1.25, width, height)

			if len(cells) != width*height {
				t.Fatalf("expected %d sink calls, got %d", width*height, len(cells))
			}
			for i, c := range cells {
				wantX, wantY := i%width, i/width
				if c.x != wantX || c.y != wantY {
					t.Fatalf("call %d at (%d,%d), want (%d,%d)", i, c.x, c.y, wantX, wantY)
				}
			}
		})
	}
}

func TestStateless_Deterministic(t *testing.T) {
	for name, fn := range statelessGenerators {
		t.Run(name, func(t *testing.T) {
			a := collect(fn, 7.5, 6, 5)
			b := collect(fn, 7.5, 6, 5)
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("cell %d differs between identical calls: %v vs %v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestStateless_ZeroExtent(t *testing.T) {
	for name, fn := range statelessGenerators {
		t.Run(name, func(t *testing.T) {
			if n := len(collect(fn, 0, 0, 0)); n != 0 {
				t.Errorf("zero-extent grid produced %d sink calls", n)
			}
		})
	}
}

func TestVerticalWave_ClosedForm(t *testing.T) {
	// At t=0, width=2, height=1 the phase is zero and amp is 0.5:
	// x=0 -> intensity clamp(1 - |0-1|/0.5) = 0 -> black
	// x=1 -> intensity clamp(1 - |1-1|/0.5) = 1 -> (0.3, 0.3, 1.0)
	cells := collect(VerticalWave, 0, 2, 1)

	if len(cells) != 2 {
		t.Fatalf("expected 2 sink calls, got %d", len(cells))
	}
	want := []cell{
		{0, 0, pixel.Pixel{Ch: ' ', Bg: pixel.RGB(0, 0, 0)}},
		{1, 0, pixel.Pixel{Ch: ' ', Bg: pixel.RGB(77, 77, 255)}},
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, cells[i], want[i])
		}
	}
}

func TestSpiral_TransparentBackground(t *testing.T) {
	for _, c := range collect(Spiral, 2.0, 8, 4) {
		if c.p.Bg != pixel.Transparent {
			t.Fatalf("spiral bg at (%d,%d) = %+v, want transparent", c.x, c.y, c.p.Bg)
		}
		if c.p.Fg.Mode != pixel.ColorRGB {
			t.Fatalf("spiral fg at (%d,%d) should be RGB", c.x, c.y)
		}
	}
}

func TestCheckerboard_TileParity(t *testing.T) {
	// Cells inside the same 5x3 tile share the same phase term; at a fixed
	// column the color can only differ across a tile boundary.
	cells := collect(Checkerboard, 0.4, 5, 6)
	colAt := func(x, y int) pixel.Color { return cells[y*5+x].p.Bg }

	if colAt(0, 0) != colAt(0, 2) {
		t.Error("cells (0,0) and (0,2) share a tile but differ")
	}
	if colAt(0, 0) == colAt(0, 3) {
		t.Error("cells (0,0) and (0,3) straddle a tile boundary but match")
	}
}
