// Package viz turns effect frames into terminal output.
//
// [RenderCells] runs one render pass and collects the row-major cell slice;
// [Painter] styles it into an ANSI string via a per-color lipgloss style
// cache; [Recorder] quantizes captured frames into an animated GIF.
//
// [Model] is the interactive Bubble Tea viewer:
//
//	Space - pause/resume
//	Tab   - next effect (shift+tab previous)
//	P     - cycle gradient palettes
//	R     - restart the current effect
//	G     - toggle GIF recording
//	?     - help overlay
//	Q     - quit
//
// Resizing the terminal drives Renderer.Update before the next frame, so
// size-dependent buffers (the fire grid) are rebuilt instead of rendered
// over a stale size.
package viz
