// Package effects implements the procedural pixel-effect generators.
//
// Every generator fills a width×height cell grid by invoking a caller
// supplied [Sink] once per cell, rows outer and columns inner, both
// ascending. Generators never read the canvas back; data flows one way.
//
//   - Stateless fields: [VerticalWave], [HorizontalWave], [Pulse],
//     [Spiral], [Checkerboard]: pure functions of (t, width, height)
//   - Stateful simulators: [Plasma], [Blobs] (metaball field) and
//     [Fire] (diffusion-cooling automaton), each owning a 256-entry
//     [Palette]
//
// Stateful simulators implement [Renderer]; the [Func] adapter lifts the
// stateless generators to the same interface. [Registry] maps effect names
// to constructors:
//
//	r, err := effects.NewRegistry().Get("fire", w, h, rand.New(rand.NewSource(seed)))
//	r.Render(clock.Normalize(), w, h, put)
//
// Simulators that consume randomness take an explicit [Source] at
// construction; there is no package-level random state, so instances are
// independently reproducible and safe to create concurrently.
//
// Every render call is a total, CPU-bound computation: out-of-range
// intermediate values are clamped before palette lookups or channel
// conversions, never allowed to index past a table.
package effects
