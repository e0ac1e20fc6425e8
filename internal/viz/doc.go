// Package viz draws the sinusoid model onto 2D path surfaces.
//
//   - [Surface]: the host drawing surface (clear, paths, stroke, fill)
//   - [Renderer]: paints axes, the curve polyline and the tracking markers
//   - [Canvas]: Braille-based pixel canvas for terminal rendering
//   - [BrailleSurface]: a [Surface] backed by a [Canvas]
//   - Theme selection with built-in color schemes
//
// Surfaces use logical coordinates; the default logical size is
// 600x300 with the origin at the top-left corner.
package viz
