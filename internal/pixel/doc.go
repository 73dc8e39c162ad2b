// Package pixel provides the value types shared by every effect generator.
//
// A rendered cell is a [Pixel]: one rune plus a foreground and background
// [Color]. Colors are either terminal defaults, explicitly transparent, or an
// 8-bit RGB triple. All color math happens in float64 and is clamped exactly
// once at the boundary into the 8-bit representation, in [FromFloat].
//
// [Clock] accumulates elapsed seconds and produces the dimensionless
// animation phase consumed by the generators:
//
//	clock := pixel.NewClock(1.0)
//	clock.Update(dt)
//	t := clock.Normalize()
//
// Everything in this package is a pure value with no failure modes.
package pixel
