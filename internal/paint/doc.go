// Package paint implements the flood-fill engine of the coloring book.
//
// Fill takes a canvas and a FillRequest (seed pixel, colour, stroke style,
// erase flag) and mutates the 4-connected region around the seed:
//
//   - Paint mode matches pixels exactly equal to the seed and writes the
//     target colour shaded by the style's StrokeEffect.
//   - Erase mode matches pixels within a per-channel tolerance of the seed and
//     restores them to opaque white.
//
// Near-black pixels are outlines: a fill seeded on one is rejected, and since
// they never match a lighter seed they bound every region. Diagonal neighbours
// are not connected, so a one-pixel diagonal line is a closed boundary.
//
// Randomness is injected through RandomSource so callers control shading;
// FixedSource(0.5) gives exact, repeatable output.
package paint
