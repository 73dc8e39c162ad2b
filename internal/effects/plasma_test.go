package effects

import (
	"testing"

	"github.com/san-kum/pixelfx/internal/pixel"
)

func TestPlasma_RowMajorSweep(t *testing.T) {
	p := NewPlasma(4, 3)
	cells := collect(p.Render, 0.5, 4, 3)

	if len(cells) != 12 {
		t.Fatalf("expected 12 sink calls, got %d", len(cells))
	}
	for i, c := range cells {
		if c.x != i%4 || c.y != i/4 {
			t.Fatalf("call %d at (%d,%d), out of row-major order", i, c.x, c.y)
		}
	}
}

func TestPlasma_ExtremePhase(t *testing.T) {
	// The summed field stays within the palette domain by analysis, but the
	// lookup must clamp regardless; a huge phase must not escape the table.
	p := NewPlasma(16, 8)
	for _, phase := range []float64{0, 1e6, -1e6, 1e12} {
		p.Render(phase, 16, 8, func(x, y int, px pixel.Pixel) {
			if px.Bg.Mode != pixel.ColorRGB {
				t.Fatalf("t=%g: cell (%d,%d) bg mode = %v, want RGB", phase, x, y, px.Bg.Mode)
			}
		})
	}
}

func TestPlasma_UpdateIsNoOp(t *testing.T) {
	p := NewPlasma(10, 5)
	before := collect(p.Render, 2.0, 10, 5)
	p.Update(80, 24)
	after := collect(p.Render, 2.0, 10, 5)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %d changed after Update: %v vs %v", i, before[i], after[i])
		}
	}
}

func TestPlasma_SetPalette(t *testing.T) {
	p := NewPlasma(6, 4)
	pal, err := LookupGradient("ocean")
	if err != nil {
		t.Fatal(err)
	}
	p.SetPalette(pal)

	p.Render(1.0, 6, 4, func(x, y int, px pixel.Pixel) {
		if px.Bg.Mode != pixel.ColorRGB {
			t.Fatalf("cell (%d,%d) bg mode = %v after SetPalette", x, y, px.Bg.Mode)
		}
	})
}
