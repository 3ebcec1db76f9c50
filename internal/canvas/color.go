package canvas

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a sampled pixel in multiple representations.
//
// Outline and Background flag the pixels the fill engine treats specially:
// near-black outlines can never be painted and near-white background cannot
// be erased.
type ColorResult struct {
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Hex        string   `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB        RGBColor `json:"rgb"`  // RGB components
	RGBA       RGBA     `json:"rgba"` // RGBA components with alpha
	HSL        HSLColor `json:"hsl"`  // HSL representation
	Outline    bool     `json:"outline"`
	Background bool     `json:"background"`
}

// SampleColor extracts the color at a pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. An out-of-bounds
// coordinate returns an error wrapping ErrOutOfBounds.
func (b *Buffer) SampleColor(x, y int) (*ColorResult, error) {
	px, err := b.Get(x, y)
	if err != nil {
		return nil, err
	}

	return &ColorResult{
		X:          x,
		Y:          y,
		Hex:        HexOf(px.R, px.G, px.B),
		RGB:        RGBColor{R: px.R, G: px.G, B: px.B},
		RGBA:       px,
		HSL:        HSLOf(px.R, px.G, px.B),
		Outline:    px.IsOutline(),
		Background: px.IsBackground(),
	}, nil
}

// IsOutline reports whether the pixel is near-black (R,G,B all <= 10).
func (c RGBA) IsOutline() bool {
	return c.R <= 10 && c.G <= 10 && c.B <= 10
}

// IsBackground reports whether the pixel is near-white (R,G,B all >= 245).
func (c RGBA) IsBackground() bool {
	return c.R >= 245 && c.G >= 245 && c.B >= 245
}

// HexOf formats 8-bit components as "#RRGGBB".
func HexOf(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// HSLOf converts 8-bit RGB values to HSL.
func HSLOf(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
