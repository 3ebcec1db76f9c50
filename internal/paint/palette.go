package paint

import (
	"fmt"
	"sort"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

// Swatch is one selectable colour of a palette.
type Swatch struct {
	ID  string          `json:"id"`
	Hex string          `json:"hex"`
	HSL canvas.HSLColor `json:"hsl"`
}

// Palette is an ordered set of swatches. All built-in palettes share the same
// identifiers, so a client can switch palettes without changing selections.
type Palette struct {
	Name     string   `json:"name"`
	Swatches []Swatch `json:"swatches"`
}

const (
	// PaletteClassic is the default set of bright primaries.
	PaletteClassic = "classic"

	// PaletteCrayon is a softer alternative set with the same identifiers.
	PaletteCrayon = "crayon"
)

var palettes = map[string]Palette{
	PaletteClassic: newPalette(PaletteClassic, [][2]string{
		{"red", "#FF0000"},
		{"orange", "#FF9900"},
		{"yellow", "#FFFF00"},
		{"green", "#33CC33"},
		{"blue", "#3366FF"},
		{"purple", "#9933FF"},
		{"pink", "#FF99CC"},
		{"brown", "#996633"},
		{"black", "#000000"},
		{"white", "#FFFFFF"},
	}),
	PaletteCrayon: newPalette(PaletteCrayon, [][2]string{
		{"red", "#D7263D"},
		{"orange", "#F46036"},
		{"yellow", "#FFD23F"},
		{"green", "#7BC950"},
		{"blue", "#4EA5D9"},
		{"purple", "#6A4C93"},
		{"pink", "#F7A1C4"},
		{"brown", "#6B3E26"},
		{"black", "#1A1A1A"},
		{"white", "#FAFAFA"},
	}),
}

func newPalette(name string, entries [][2]string) Palette {
	p := Palette{Name: name, Swatches: make([]Swatch, 0, len(entries))}
	for _, e := range entries {
		c, ok := ParseHex(e[1])
		if !ok {
			panic(fmt.Sprintf("palette %s: bad colour %q", name, e[1]))
		}
		p.Swatches = append(p.Swatches, Swatch{
			ID:  e[0],
			Hex: c.Hex(),
			HSL: canvas.HSLOf(c.R, c.G, c.B),
		})
	}
	return p
}

// Palettes returns the built-in palettes sorted by name.
func Palettes() []Palette {
	out := make([]Palette, 0, len(palettes))
	for _, p := range palettes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPalette returns the named palette. An empty name selects the classic
// palette.
func LookupPalette(name string) (Palette, error) {
	if name == "" {
		name = PaletteClassic
	}
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette: %s", name)
	}
	return p, nil
}

// Resolve maps a swatch identifier to its hex string. Anything that is not an
// identifier of the palette is returned unchanged, so raw hex colours pass
// through and malformed input is left for the fill engine to reject.
func (p Palette) Resolve(idOrHex string) string {
	for _, s := range p.Swatches {
		if s.ID == idOrHex {
			return s.Hex
		}
	}
	return idOrHex
}
