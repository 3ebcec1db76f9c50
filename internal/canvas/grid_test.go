package canvas

import (
	"testing"
)

func TestGridOverlay(t *testing.T) {
	b := newFilledBuffer(t, 20, 20, White)

	out, err := GridOverlay(b, 10, false)
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want RGBA
	}{
		{"vertical line", 10, 3, RGBA{255, 128, 128, 255}},
		{"horizontal line", 3, 10, RGBA{255, 128, 128, 255}},
		{"intersection blended once", 10, 10, RGBA{255, 128, 128, 255}},
		{"off the grid", 3, 3, White},
		{"no line at origin", 0, 0, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := out.Get(tt.x, tt.y)
			if abs(int(got.R)-int(tt.want.R)) > 1 || abs(int(got.G)-int(tt.want.G)) > 1 ||
				abs(int(got.B)-int(tt.want.B)) > 1 || got.A != tt.want.A {
				t.Errorf("pixel (%d,%d): got %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if !b.Equal(newFilledBuffer(t, 20, 20, White)) {
		t.Error("GridOverlay must not modify the source canvas")
	}
}

func TestGridOverlay_Labels(t *testing.T) {
	b := newFilledBuffer(t, 40, 40, White)

	plain, err := GridOverlay(b, 20, false)
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}
	labelled, err := GridOverlay(b, 20, true)
	if err != nil {
		t.Fatalf("GridOverlay failed: %v", err)
	}

	if plain.Equal(labelled) {
		t.Fatal("labels should change the overlay")
	}
	// The label box background starts one pixel up-left of (22,22).
	if c, _ := labelled.Get(21, 21); c != (RGBA{0, 0, 0, 255}) {
		t.Errorf("label background: got %+v", c)
	}
	// "20,20" starts with '2', whose top row is fully lit.
	if c, _ := labelled.Get(22, 22); c != (RGBA{255, 255, 255, 255}) {
		t.Errorf("label glyph: got %+v", c)
	}
}

func TestGridOverlay_Invalid(t *testing.T) {
	b := newFilledBuffer(t, 4, 4, White)
	if _, err := GridOverlay(b, 0, false); err == nil {
		t.Error("zero spacing should fail")
	}
	if _, err := GridOverlay(nil, 5, false); err == nil {
		t.Error("nil buffer should fail")
	}
}
