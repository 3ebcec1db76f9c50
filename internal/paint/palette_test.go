package paint

import "testing"

func TestPalettes(t *testing.T) {
	ps := Palettes()
	if len(ps) != 2 {
		t.Fatalf("expected 2 palettes, got %d", len(ps))
	}
	if ps[0].Name != PaletteClassic || ps[1].Name != PaletteCrayon {
		t.Errorf("order: got %s, %s", ps[0].Name, ps[1].Name)
	}

	// Palettes are interchangeable: same identifiers in the same order.
	if len(ps[0].Swatches) != len(ps[1].Swatches) {
		t.Fatalf("swatch counts differ: %d vs %d", len(ps[0].Swatches), len(ps[1].Swatches))
	}
	for i := range ps[0].Swatches {
		if ps[0].Swatches[i].ID != ps[1].Swatches[i].ID {
			t.Errorf("swatch %d: %s vs %s", i, ps[0].Swatches[i].ID, ps[1].Swatches[i].ID)
		}
		if _, ok := ParseHex(ps[1].Swatches[i].Hex); !ok {
			t.Errorf("swatch %s has invalid hex %s", ps[1].Swatches[i].ID, ps[1].Swatches[i].Hex)
		}
	}
}

func TestLookupPalette(t *testing.T) {
	p, err := LookupPalette("")
	if err != nil {
		t.Fatalf("LookupPalette failed: %v", err)
	}
	if p.Name != PaletteClassic {
		t.Errorf("default palette: got %s", p.Name)
	}

	if _, err := LookupPalette("neon"); err == nil {
		t.Error("LookupPalette should fail for an unknown palette")
	}
}

func TestPalette_Resolve(t *testing.T) {
	classic, _ := LookupPalette(PaletteClassic)
	crayon, _ := LookupPalette(PaletteCrayon)

	tests := []struct {
		name    string
		palette Palette
		in      string
		want    string
	}{
		{"classic id", classic, "red", "#FF0000"},
		{"crayon id", crayon, "red", "#D7263D"},
		{"raw hex", classic, "#123456", "#123456"},
		{"unknown passes through", crayon, "chartreuse", "chartreuse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.palette.Resolve(tt.in); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
