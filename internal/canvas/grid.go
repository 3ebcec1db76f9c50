package canvas

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// gridColor is blended over the canvas at gridOpacity along grid lines.
var gridColor = colorful.Color{R: 1, G: 0, B: 0}

const gridOpacity = 0.5

// GridOverlay returns a copy of b with a coordinate grid drawn every spacing
// pixels. With labels, each grid intersection is tagged with its canvas
// coordinates so a viewer can read off fill points. b is not modified.
func GridOverlay(b *Buffer, spacing int, labels bool) (*Buffer, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if spacing < 1 {
		return nil, fmt.Errorf("grid spacing must be positive, got %d", spacing)
	}

	out := b.Clone()
	w, h := out.width, out.height

	for x := spacing; x < w; x += spacing {
		for y := 0; y < h; y++ {
			out.blend(x, y)
		}
	}
	for y := spacing; y < h; y += spacing {
		for x := 0; x < w; x++ {
			// Intersections were already tinted by the vertical pass.
			if x%spacing == 0 && x > 0 {
				continue
			}
			out.blend(x, y)
		}
	}

	if labels {
		fg := RGBA{255, 255, 255, 255}
		bg := RGBA{0, 0, 0, 255}
		for y := spacing; y < h; y += spacing {
			for x := spacing; x < w; x += spacing {
				out.drawLabel(x+2, y+2, fmt.Sprintf("%d,%d", x, y), fg, bg)
			}
		}
	}

	return out, nil
}

func (b *Buffer) blend(x, y int) {
	i := (y*b.width + x) * 4
	c := colorful.Color{
		R: float64(b.pix[i]) / 255,
		G: float64(b.pix[i+1]) / 255,
		B: float64(b.pix[i+2]) / 255,
	}
	r, g, bl := c.BlendRgb(gridColor, gridOpacity).Clamped().RGB255()
	b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3] = r, g, bl, 255
}

// glyphs is a 3x5 pixel font covering coordinate labels.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

// drawLabel writes text with its top-left corner at (x, y) on a solid
// background box. Pixels outside the canvas are clipped.
func (b *Buffer) drawLabel(x, y int, text string, fg, bg RGBA) {
	const charWidth, labelHeight = 4, 7
	labelWidth := len(text) * charWidth

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			_ = b.Set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, px := range line {
					if px == '1' {
						_ = b.Set(cx+col, y+row, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
