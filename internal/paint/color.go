package paint

import (
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

// Color is an opaque RGB fill colour.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// hexPattern accepts "#RRGGBB" or "RRGGBB", case-insensitive.
var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// ParseHex parses a "#RRGGBB" colour. The leading '#' is optional.
// ok is false for anything else (short forms, names, stray whitespace).
func ParseHex(s string) (c Color, ok bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(m[1]+m[2]+m[3]))
	if err != nil {
		return Color{}, false
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b}, true
}

// Hex formats the colour as "#RRGGBB".
func (c Color) Hex() string {
	return canvas.HexOf(c.R, c.G, c.B)
}

// Opaque returns the colour as a fully opaque pixel.
func (c Color) Opaque() canvas.RGBA {
	return canvas.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
