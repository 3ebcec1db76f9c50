// Package canvas provides the pixel canvas a coloring page is painted on.
//
// A Buffer is a fixed-size RGBA grid stored as a flat channel array. It offers
// bounds-checked per-pixel access plus whole-canvas Snapshot/Restore, which
// the fill engine uses to mutate a private copy and commit it in one step so
// a renderer never observes a half-finished fill.
//
// The package also carries the collaborators around the canvas: decoding and
// rasterizing the base artwork, mapping display positions to canvas pixels,
// sampling colors, overlaying a coordinate grid and rendering the canvas to
// PNG.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Valid coordinates satisfy
// 0 <= x < Width and 0 <= y < Height.
//
// # Thread Safety
//
// ArtworkCache is safe for concurrent use. Buffer is not; the session package
// serializes every access to a live canvas.
//
// # Error Handling
//
// Functions return errors wrapping the package sentinels:
//   - ErrOutOfBounds for coordinates outside the canvas
//   - ErrSizeMismatch when restoring a snapshot of a different canvas
//   - ErrInvalidSize for non-positive dimensions
//   - ErrUnavailable when the canvas storage cannot be read
package canvas
