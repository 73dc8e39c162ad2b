package effects

import "github.com/san-kum/pixelfx/internal/pixel"

// Sink receives one rendered cell. A render call invokes it exactly
// width×height times in row-major order (y outer ascending, x inner
// ascending); consumers may rely on that order for incremental painting.
type Sink func(x, y int, p pixel.Pixel)

// Renderer is one effect instance. Update must be called whenever the canvas
// size changes, before the next Render; for effects without size-dependent
// buffers it is a no-op. Render produces one frame for the animation phase t.
type Renderer interface {
	Update(width, height int)
	Render(t float64, width, height int, put Sink)
}

// Func lifts a stateless generator into a Renderer.
type Func func(t float64, width, height int, put Sink)

func (f Func) Update(width, height int) {}

func (f Func) Render(t float64, width, height int, put Sink) {
	f(t, width, height, put)
}

// Source supplies uniform random floats in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}
