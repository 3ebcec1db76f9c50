package paint

import (
	"testing"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleSolid, false},
		{"solid", StyleSolid, false},
		{"pastel", StylePastel, false},
		{"pencil", StylePencil, false},
		{"brush", StyleBrush, false},
		{"Pencil", "", true},
		{"marker", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyle_Next(t *testing.T) {
	s := StyleSolid
	seen := map[Style]bool{}
	for i := 0; i < len(Styles()); i++ {
		seen[s] = true
		s = s.Next()
	}
	if s != StyleSolid {
		t.Errorf("cycle did not return to solid: %s", s)
	}
	if len(seen) != len(Styles()) {
		t.Errorf("cycle visited %d styles, want %d", len(seen), len(Styles()))
	}
	if Style("bogus").Next() != StyleSolid {
		t.Error("unknown style should cycle to solid")
	}
}

func TestStrokeEffect_Shade(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		c     Color
		v     float64
		want  canvas.RGBA
	}{
		{"solid ignores draw", StyleSolid, Color{10, 20, 30}, 0.4, canvas.RGBA{R: 10, G: 20, B: 30, A: 255}},
		{"pastel centre", StylePastel, Color{100, 100, 100}, 0, canvas.RGBA{R: 100, G: 100, B: 100, A: 153}},
		{"pencil darkest", StylePencil, Color{255, 0, 100}, -0.5, canvas.RGBA{R: 204, G: 0, B: 80, A: 173}},
		{"brush clamps", StyleBrush, Color{250, 250, 250}, 0.5, canvas.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := tt.style.Effect()
			if !ok {
				t.Fatalf("no effect for %s", tt.style)
			}
			if got := e.Shade(tt.c, tt.v); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrokeEffect_SharedFactor(t *testing.T) {
	// Lighter colour and higher alpha come from the same draw.
	e, _ := StylePencil.Effect()
	dark := e.Shade(Color{200, 200, 200}, -0.25)
	light := e.Shade(Color{200, 200, 200}, 0.25)
	if !(dark.R < light.R && dark.A < light.A) {
		t.Errorf("colour and alpha should move together: dark=%v light=%v", dark, light)
	}
}

func TestFixedSource(t *testing.T) {
	var src RandomSource = FixedSource(0.25)
	for i := 0; i < 3; i++ {
		if v := src.Float64(); v != 0.25 {
			t.Fatalf("got %v, want 0.25", v)
		}
	}
}

func TestNewRandomSource_Deterministic(t *testing.T) {
	a := NewRandomSource(99)
	b := NewRandomSource(99)
	for i := 0; i < 10; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d differs: %v vs %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, va)
		}
	}
}
