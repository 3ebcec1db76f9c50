package paint

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

// Style selects the stroke effect used when painting.
type Style string

const (
	StyleSolid  Style = "solid"
	StylePastel Style = "pastel"
	StylePencil Style = "pencil"
	StyleBrush  Style = "brush"
)

// StrokeEffect controls per-pixel shading of a painted region.
//
// Every painted pixel draws one v uniformly from [-0.5, 0.5) and scales the
// target colour and the alpha by the same factor 1 + Variation*v, so darker
// pixels are also more opaque.
type StrokeEffect struct {
	OpacityBase float64 `json:"opacity_base"`
	Variation   float64 `json:"variation"`
}

var strokeEffects = map[Style]StrokeEffect{
	StyleSolid:  {OpacityBase: 1.0, Variation: 0.0},
	StylePastel: {OpacityBase: 0.6, Variation: 0.2},
	StylePencil: {OpacityBase: 0.85, Variation: 0.4},
	StyleBrush:  {OpacityBase: 0.95, Variation: 0.15},
}

// Styles returns the selectable styles in cycling order.
func Styles() []Style {
	return []Style{StyleSolid, StylePastel, StylePencil, StyleBrush}
}

// ParseStyle converts a style tag. The empty string selects StyleSolid.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleSolid, nil
	}
	st := Style(s)
	if _, ok := strokeEffects[st]; !ok {
		return "", fmt.Errorf("unknown style: %s", s)
	}
	return st, nil
}

// Effect returns the stroke effect of the style.
func (s Style) Effect() (StrokeEffect, bool) {
	e, ok := strokeEffects[s]
	return e, ok
}

// Next returns the style after s in cycling order.
func (s Style) Next() Style {
	all := Styles()
	for i, st := range all {
		if st == s {
			return all[(i+1)%len(all)]
		}
	}
	return StyleSolid
}

// Shade returns the pixel written for colour c with variation draw v.
// Channels are rounded and clamped to [0,255].
func (e StrokeEffect) Shade(c Color, v float64) canvas.RGBA {
	f := 1 + e.Variation*v
	return canvas.RGBA{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
		A: clampChannel(255 * e.OpacityBase * f),
	}
}

func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// FixedSource always returns the same draw. FixedSource(0.5) produces no
// variation at all.
type FixedSource float64

// Float64 returns the fixed value.
func (f FixedSource) Float64() float64 { return float64(f) }

// NewRandomSource returns a seeded pseudo-random source. It is not safe for
// concurrent use.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
